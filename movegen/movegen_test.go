package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/blockplan/blockplan/world"
)

func TestEdgesFromStart(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator()
	s := world.SmallWorld() // arm at column 0 over e, holding nothing

	edges := gen.EdgesFrom(StartNode(s))
	// pick and right are legal; left falls off the world, drop holds nothing.
	is.Equal(len(edges), 2)
	for _, e := range edges {
		is.Equal(e.Cost, 1)
		is.True(e.To.Via == world.Pick || e.To.Via == world.Right)
		is.True(!e.To.Start)
	}
}

func TestEdgesRegenerateEqualNodes(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator()
	n := StartNode(world.SmallWorld())

	a := gen.EdgesFrom(n)
	b := gen.EdgesFrom(n)
	for i := range a {
		is.True(a[i].To.State != b[i].To.State) // fresh allocations
		is.True(a[i].To.Equals(b[i].To))        // same value
		is.Equal(a[i].To.Key(), b[i].To.Key())
	}
}

func TestEdgesRespectPhysics(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator()
	// Holding a brick over a lone ball: drop is not among the edges.
	s := &world.State{
		Arm:     0,
		Holding: "a",
		Stacks:  [][]string{{"e"}},
		Objects: map[string]world.Object{
			"a": {Form: world.FormBrick, Size: world.SizeSmall},
			"e": {Form: world.FormBall, Size: world.SizeLarge},
		},
	}
	edges := gen.EdgesFrom(StartNode(s))
	is.Equal(len(edges), 0) // one column, loaded arm, unsupportable drop
}

func TestReplay(t *testing.T) {
	is := is.New(t)
	s := world.SmallWorld()

	end, err := Replay(s, []world.Action{world.Pick, world.Right, world.Right, world.Drop})
	is.NoErr(err)
	is.Equal(end.Stacks[2], []string{"e"})
	is.Equal(end.Holding, "")
	is.Equal(s.Stacks[2], []string{}) // input snapshot untouched

	_, err = Replay(s, []world.Action{world.Drop})
	is.True(err != nil) // nothing held
	_, err = Replay(s, []world.Action{world.Left})
	is.True(err != nil) // falls off the left edge
}
