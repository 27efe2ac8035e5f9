// Package world models block-world snapshots: a row of stacks, a robot arm
// that can hold one object, and the physical laws that govern stacking.
// Snapshots are immutable once constructed; every transition clones.
package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Floor is the sentinel identifier for the floor. It may appear as the
// second argument of a spatial relation but never names a real object.
const Floor = "floor"

// State is one block-world snapshot. A State must never be mutated after
// construction; Apply returns fresh snapshots, so states can be shared
// freely as map keys and across search frontiers.
type State struct {
	// Arm is the column the arm is over, 0-based, always within
	// [0, len(Stacks)-1].
	Arm int
	// Holding is the identifier of the held object, or "" when the arm is
	// empty.
	Holding string
	// Stacks lists each column's objects from bottom to top. Every object
	// identifier appears in exactly one place: one stack slot, or Holding.
	Stacks [][]string
	// Objects maps identifiers to their physical attributes. The map is
	// shared between snapshots of the same world and never written to.
	Objects map[string]Object
}

// Clone returns a snapshot with fresh stack storage. The attribute table is
// shared; it is read-only by convention.
func (s *State) Clone() *State {
	stacks := make([][]string, len(s.Stacks))
	for i, st := range s.Stacks {
		stacks[i] = make([]string, len(st))
		copy(stacks[i], st)
	}
	return &State{
		Arm:     s.Arm,
		Holding: s.Holding,
		Stacks:  stacks,
		Objects: s.Objects,
	}
}

// Equals reports structural equality: same arm column, same held object,
// same stack contents. It deliberately ignores pointer identity; the state
// model regenerates snapshots on every expansion.
func (s *State) Equals(o *State) bool {
	if s.Arm != o.Arm || s.Holding != o.Holding || len(s.Stacks) != len(o.Stacks) {
		return false
	}
	for i, st := range s.Stacks {
		if len(st) != len(o.Stacks[i]) {
			return false
		}
		for j, id := range st {
			if id != o.Stacks[i][j] {
				return false
			}
		}
	}
	return true
}

// Key returns a canonical string for the snapshot, suitable as a map key.
// Two states have the same Key iff they are Equals.
func (s *State) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(s.Arm))
	sb.WriteByte('/')
	sb.WriteString(s.Holding)
	for _, st := range s.Stacks {
		sb.WriteByte('/')
		sb.WriteString(strings.Join(st, ","))
	}
	return sb.String()
}

// Has reports whether id names an object of this world.
func (s *State) Has(id string) bool {
	_, ok := s.Objects[id]
	return ok
}

// Position locates an object in the stacks, returning its column and its
// 0-based height from the bottom. ok is false when the object is not in any
// stack (it is held, or unknown).
func (s *State) Position(id string) (col, row int, ok bool) {
	for c, st := range s.Stacks {
		for r, o := range st {
			if o == id {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

// ObjectsAbove counts the objects stacked directly above id in its stack.
// It returns 0 for a held or unknown object.
func (s *State) ObjectsAbove(id string) int {
	col, row, ok := s.Position(id)
	if !ok {
		return 0
	}
	return len(s.Stacks[col]) - row - 1
}

// Apply simulates one primitive action, returning the resulting snapshot
// and true, or nil and false when the action is not legal in this state.
// Illegal actions are not errors; the state model simply has no such edge.
func (s *State) Apply(a Action) (*State, bool) {
	switch a {
	case Left:
		if s.Arm <= 0 {
			return nil, false
		}
		n := s.Clone()
		n.Arm--
		return n, true
	case Right:
		if s.Arm >= len(s.Stacks)-1 {
			return nil, false
		}
		n := s.Clone()
		n.Arm++
		return n, true
	case Pick:
		if s.Holding != "" || len(s.Stacks[s.Arm]) == 0 {
			return nil, false
		}
		n := s.Clone()
		st := n.Stacks[n.Arm]
		n.Holding = st[len(st)-1]
		n.Stacks[n.Arm] = st[:len(st)-1]
		return n, true
	case Drop:
		if s.Holding == "" {
			return nil, false
		}
		if st := s.Stacks[s.Arm]; len(st) > 0 {
			if !Supports(s.Objects[st[len(st)-1]], s.Objects[s.Holding]) {
				return nil, false
			}
		}
		n := s.Clone()
		n.Stacks[n.Arm] = append(n.Stacks[n.Arm], n.Holding)
		n.Holding = ""
		return n, true
	}
	return nil, false
}

// Validate checks the single-placement invariant: every identifier in a
// stack or in the arm is a known object, and no identifier appears twice.
func (s *State) Validate() error {
	if len(s.Stacks) == 0 {
		return fmt.Errorf("world has no stacks")
	}
	if s.Arm < 0 || s.Arm >= len(s.Stacks) {
		return fmt.Errorf("arm column %d out of range [0,%d)", s.Arm, len(s.Stacks))
	}
	seen := make(map[string]bool)
	place := func(id string) error {
		if !s.Has(id) {
			return fmt.Errorf("object %q placed but not defined", id)
		}
		if seen[id] {
			return fmt.Errorf("object %q placed more than once", id)
		}
		seen[id] = true
		return nil
	}
	if s.Holding != "" {
		if err := place(s.Holding); err != nil {
			return err
		}
	}
	for _, st := range s.Stacks {
		for _, id := range st {
			if err := place(id); err != nil {
				return err
			}
		}
	}
	for id := range s.Objects {
		if !seen[id] {
			return fmt.Errorf("object %q defined but placed nowhere", id)
		}
	}
	return nil
}

func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "arm@%d", s.Arm)
	if s.Holding != "" {
		fmt.Fprintf(&sb, " holding %s", s.Holding)
	}
	sb.WriteString(" |")
	for _, st := range s.Stacks {
		sb.WriteByte(' ')
		if len(st) == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteString(strings.Join(st, " "))
		}
		sb.WriteString(" |")
	}
	return sb.String()
}
