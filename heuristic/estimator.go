// Package heuristic estimates the remaining action count for a goal
// formula in a given snapshot. Per-literal lower bounds combine as
// max-over-a-clause and min-over-the-formula, which keeps the estimate
// admissible across conjunction and disjunction.
package heuristic

import (
	"github.com/samber/lo"

	"github.com/blockplan/blockplan/logic"
	"github.com/blockplan/blockplan/world"
)

// These are tuning values, not a derived cost model. Keep them together;
// nothing else in the package hard-codes a number.
const (
	// Reaching any target costs one pick when the arm is free, or a drop
	// and then the pick when it is loaded.
	baseFree   = 1
	baseLoaded = 2
	// Each object stacked above a target must itself be relocated:
	// pick + move + drop.
	perBlocking = 3
	// Inserting something underneath takes extra shuffling to stay within
	// the stacking laws.
	underFree   = 6
	underLoaded = 8
)

// Literal returns a lower bound on the actions needed to make l hold in s.
// A literal that already holds costs 0. The symmetric relations (beside,
// leftof, rightof) can be satisfied by relocating either argument, so they
// cost the cheaper of the two orientations; a single orientation can
// overestimate when moving the other argument is cheaper.
func Literal(l logic.Literal, s *world.State) int {
	if l.Holds(s) {
		return 0
	}
	if l.Relation == logic.Holding {
		return moveBase(s, l.Args[0]) + armDist(s, l.Args[0])
	}
	x, y := l.Args[0], l.Args[1]
	reachX := moveBase(s, x) + perBlocking*blocking(s, x) + armDist(s, x)
	switch l.Relation {
	case logic.OnTop, logic.Inside:
		return reachX + perBlocking*blocking(s, y) + armDist(s, y)
	case logic.Above:
		// No need to clear y's top; x only has to end up in y's column.
		return reachX + armDist(s, y)
	case logic.Under:
		base := underFree
		if s.Holding != "" {
			base = underLoaded
		}
		return base + perBlocking*blocking(s, x) + armDist(s, x) +
			perBlocking*blocking(s, y) + armDist(s, y)
	case logic.Beside:
		return min(reachX+besideDist(s, y), beside(s, y, x))
	case logic.LeftOf:
		return min(reachX+targetDist(s, y, -1),
			moveBase(s, y)+perBlocking*blocking(s, y)+armDist(s, y)+targetDist(s, x, +1))
	case logic.RightOf:
		return min(reachX+targetDist(s, y, +1),
			moveBase(s, y)+perBlocking*blocking(s, y)+armDist(s, y)+targetDist(s, x, -1))
	}
	return 0
}

// beside is the cost of relocating x next to y, the one-sided half of the
// Beside estimate.
func beside(s *world.State, x, y string) int {
	return moveBase(s, x) + perBlocking*blocking(s, x) + armDist(s, x) + besideDist(s, y)
}

// moveBase is the fixed cost of getting the arm onto the object to move:
// one pick when the arm is free, a drop first when it is loaded, and just
// the eventual drop when it already holds the object.
func moveBase(s *world.State, x string) int {
	switch s.Holding {
	case x:
		return baseFree
	case "":
		return baseFree
	}
	return baseLoaded
}

// Clause returns the cost of a conjunction: the maximum over its literals.
// All must eventually hold and actions may be shared, so the most expensive
// literal is the tightest admissible bound; summing would overestimate.
func Clause(c logic.Clause, s *world.State) int {
	return lo.Max(lo.Map(c, func(l logic.Literal, _ int) int {
		return Literal(l, s)
	}))
}

// Formula returns the cost of a DNF formula: the minimum over its clauses,
// since satisfying any one clause satisfies the goal.
func Formula(f logic.Formula, s *world.State) int {
	return lo.Min(lo.Map(f, func(c logic.Clause, _ int) int {
		return Clause(c, s)
	}))
}

// column locates id for distance purposes: a held object travels with the
// arm. ok is false for the floor, which has no particular column.
func column(s *world.State, id string) (int, bool) {
	if id == world.Floor {
		return 0, false
	}
	if s.Holding == id {
		return s.Arm, true
	}
	col, _, placed := s.Position(id)
	if !placed {
		return 0, false
	}
	return col, true
}

// armDist is the horizontal distance from the arm to id's column, or 0
// when id has no column (the floor: some column always works).
func armDist(s *world.State, id string) int {
	col, ok := column(s, id)
	if !ok {
		return 0
	}
	return abs(s.Arm - col)
}

// blocking counts objects stacked above id; 0 for the floor or a held
// object.
func blocking(s *world.State, id string) int {
	if id == world.Floor {
		return 0
	}
	return s.ObjectsAbove(id)
}

// besideDist is the distance from the arm to the nearer column flanking y.
func besideDist(s *world.State, y string) int {
	d := armDist(s, y) - 1
	if d < 0 {
		d = 0
	}
	return d
}

// targetDist is the distance from the arm to the column adjacent to y on
// the given side, where x would minimally land.
func targetDist(s *world.State, y string, side int) int {
	col, ok := column(s, y)
	if !ok {
		return 0
	}
	return abs(col + side - s.Arm)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
