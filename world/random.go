package world

import (
	"lukechampine.com/frand"
)

// RandomWorld scatters the given objects over numStacks columns, respecting
// the stacking laws, with the arm empty at a random column. Every placement
// is legal because the floor supports anything; used by property tests to
// generate physically consistent instances.
func RandomWorld(numStacks int, objects map[string]Object) *State {
	ids := make([]string, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}
	// map order is already random, but make the shuffle explicit so the
	// distribution doesn't depend on runtime internals.
	frand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	stacks := make([][]string, numStacks)
	for i := range stacks {
		stacks[i] = []string{}
	}
	s := &State{
		Arm:     frand.Intn(numStacks),
		Stacks:  stacks,
		Objects: objects,
	}
	for _, id := range ids {
		legal := make([]int, 0, numStacks)
		for col, st := range s.Stacks {
			if len(st) == 0 {
				legal = append(legal, col)
				continue
			}
			top := st[len(st)-1]
			if Supports(objects[top], objects[id]) {
				legal = append(legal, col)
			}
		}
		col := legal[frand.Intn(len(legal))]
		s.Stacks[col] = append(s.Stacks[col], id)
	}
	return s
}
