package logic

import (
	"github.com/samber/lo"

	"github.com/blockplan/blockplan/world"
)

// Goal evaluation is purely positional: stack membership, adjacency and
// column comparison against one snapshot. No search happens here.

// Holds reports whether the literal is true in s. A negated literal never
// holds; Validate rejects them before any search starts, so this is only a
// backstop.
func (l Literal) Holds(s *world.State) bool {
	if !l.Polarity {
		return false
	}
	if l.Relation == Holding {
		return s.Holding == l.Args[0]
	}
	x, y := l.Args[0], l.Args[1]
	colX, rowX, placed := s.Position(x)
	if !placed {
		// A held object satisfies no spatial relation.
		return false
	}
	if y == world.Floor {
		switch l.Relation {
		case OnTop, Inside:
			return rowX == 0
		case Above:
			return true
		}
		return false
	}
	colY, rowY, placedY := s.Position(y)
	if !placedY {
		return false
	}
	switch l.Relation {
	case OnTop, Inside:
		return colX == colY && rowX == rowY+1
	case Above:
		return colX == colY && rowX > rowY
	case Under:
		return colX == colY && rowX < rowY
	case Beside:
		return colX-colY == 1 || colY-colX == 1
	case LeftOf:
		return colX < colY
	case RightOf:
		return colX > colY
	}
	return false
}

// Holds reports whether every literal of the clause is true in s.
func (c Clause) Holds(s *world.State) bool {
	return lo.EveryBy(c, func(l Literal) bool { return l.Holds(s) })
}

// Holds reports whether at least one clause of the formula is true in s.
// An empty formula holds in no state.
func (f Formula) Holds(s *world.State) bool {
	return lo.SomeBy(f, func(c Clause) bool { return c.Holds(s) })
}
