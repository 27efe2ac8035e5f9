// Package planner turns a DNF goal and a world snapshot into the cheapest
// primitive-action sequence, driving the generic search engine with the
// block-world graph and the formula heuristic. It is a pure function of its
// inputs; nothing persists between calls.
package planner

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/blockplan/blockplan/astar"
	"github.com/blockplan/blockplan/heuristic"
	"github.com/blockplan/blockplan/logic"
	"github.com/blockplan/blockplan/movegen"
	"github.com/blockplan/blockplan/world"
)

// AlreadyTrue is the exact message rendered for a goal the initial state
// already satisfies.
const AlreadyTrue = "That is already true!"

// Failure modes of one planning call. All are fatal to the call; there is
// no internal retry.
var (
	ErrTimeout          = astar.ErrTimeout
	ErrNoPlanFound      = astar.ErrNoPlanFound
	ErrInvalidReference = logic.ErrInvalidReference
)

// Plan is a solved goal: the action sequence and its total cost. An empty
// sequence means the goal already held.
type Plan struct {
	Actions []world.Action
	Cost    int
}

// Codes renders the plan as the single-character wire codes, e.g. "prd".
func (p *Plan) Codes() string {
	return strings.Join(lo.Map(p.Actions, func(a world.Action, _ int) string {
		return string(a.Code())
	}), "")
}

func (p *Plan) String() string {
	if len(p.Actions) == 0 {
		return AlreadyTrue
	}
	return p.Codes()
}

// Planner plans against one timeout budget. The zero value carries no
// budget at all; that's fine for tests, less so for users.
type Planner struct {
	timeout    time.Duration
	hasTimeout bool
}

func New() *Planner {
	return &Planner{}
}

// SetTimeout bounds each planning call's wall clock.
func (p *Planner) SetTimeout(d time.Duration) {
	p.timeout = d
	p.hasTimeout = true
}

// Plan validates the goal against the snapshot, short-circuits if it
// already holds, and otherwise searches for the cheapest action sequence.
func (p *Planner) Plan(ctx context.Context, goal logic.Formula, start *world.State) (*Plan, error) {
	if err := goal.Validate(start); err != nil {
		return nil, err
	}
	if goal.Holds(start) {
		log.Debug().Str("goal", goal.String()).Msg("goal-already-true")
		return &Plan{}, nil
	}
	solver := astar.New[movegen.Node](
		movegen.NewGenerator(),
		func(n movegen.Node) bool { return goal.Holds(n.State) },
		func(n movegen.Node) int { return heuristic.Formula(goal, n.State) },
	)
	if p.hasTimeout {
		solver.SetTimeout(p.timeout)
	}
	result, err := solver.Solve(ctx, movegen.StartNode(start))
	if err != nil {
		return nil, err
	}
	// Path[0] is the start node; every later node records the action that
	// reached it.
	actions := lo.Map(result.Path[1:], func(n movegen.Node, _ int) world.Action {
		return n.Via
	})
	log.Info().
		Str("goal", goal.String()).
		Str("plan", (&Plan{Actions: actions}).Codes()).
		Int("cost", result.Cost).
		Uint64("nodes-expanded", solver.Nodes()).
		Msg("plan-found")
	return &Plan{Actions: actions, Cost: result.Cost}, nil
}

// Any tries candidate goal formulas in order, as when several ambiguous
// interpretations of one utterance are planned against. One candidate's
// failure, including a timeout, never aborts its siblings. If every
// candidate fails, the first recorded error is returned.
func (p *Planner) Any(ctx context.Context, goals []logic.Formula, start *world.State) (*Plan, error) {
	var firstErr error
	for i, goal := range goals {
		plan, err := p.Plan(ctx, goal, start)
		if err == nil {
			return plan, nil
		}
		log.Debug().Int("candidate", i).Err(err).Msg("candidate-failed")
		if firstErr == nil {
			firstErr = err
		}
		if ctx.Err() != nil {
			// The caller's context is gone; stop trying siblings.
			break
		}
	}
	if firstErr == nil {
		firstErr = ErrNoPlanFound
	}
	return nil, firstErr
}
