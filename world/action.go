package world

import "fmt"

// Action is one of the four primitive arm actions.
type Action uint8

const (
	Pick Action = iota
	Drop
	Left
	Right
)

var actionCodes = [...]byte{Pick: 'p', Drop: 'd', Left: 'l', Right: 'r'}

// Code returns the single-character wire code for the action: p, d, l or r.
func (a Action) Code() byte {
	return actionCodes[a]
}

func (a Action) String() string {
	switch a {
	case Pick:
		return "pick"
	case Drop:
		return "drop"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ActionFromCode parses a single-character action code.
func ActionFromCode(c byte) (Action, error) {
	switch c {
	case 'p':
		return Pick, nil
	case 'd':
		return Drop, nil
	case 'l':
		return Left, nil
	case 'r':
		return Right, nil
	}
	return 0, fmt.Errorf("invalid action code %q", string(c))
}

// Actions enumerates every primitive action, in the order the state model
// tries them during expansion.
var Actions = []Action{Pick, Drop, Left, Right}
