package logic

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/blockplan/blockplan/world"
)

// SmallWorld stacks: [e] [g l] [] [k m f] [], arm at 0, holding nothing.

func TestLiteralHolds(t *testing.T) {
	s := world.SmallWorld()
	cases := []struct {
		lit  Literal
		want bool
	}{
		{Pos(OnTop, "e", world.Floor), true},
		{Pos(OnTop, "l", "g"), true},
		{Pos(OnTop, "f", "m"), true},
		{Pos(Inside, "m", "k"), true},
		{Pos(Inside, "f", "m"), true},
		{Pos(OnTop, "f", "k"), false}, // not directly on k
		{Pos(Above, "f", "k"), true},
		{Pos(Above, "e", world.Floor), true},
		{Pos(Under, "k", "f"), true},
		{Pos(Under, "f", "k"), false},
		{Pos(Beside, "e", "g"), true},
		{Pos(Beside, "e", "f"), false},
		{Pos(LeftOf, "e", "f"), true},
		{Pos(RightOf, "f", "g"), true},
		{Pos(RightOf, "g", "f"), false},
		{Pos(Holding, "e"), false},
		{Literal{Polarity: false, Relation: OnTop, Args: []string{"l", "g"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.lit.String(), func(t *testing.T) {
			is := is.New(t)
			is.Equal(tc.lit.Holds(s), tc.want)
		})
	}
}

func TestHoldingAndHeldObjects(t *testing.T) {
	is := is.New(t)
	s := world.SmallWorld()
	held, ok := s.Apply(world.Pick)
	is.True(ok)

	is.True(Pos(Holding, "e").Holds(held))
	is.True(!Pos(Holding, "f").Holds(held))
	// A held object satisfies no spatial relation.
	is.True(!Pos(OnTop, "e", world.Floor).Holds(held))
	is.True(!Pos(Beside, "e", "g").Holds(held))
}

func TestFormulaHolds(t *testing.T) {
	is := is.New(t)
	s := world.SmallWorld()

	// One satisfied clause is enough.
	f := Formula{
		{Pos(Holding, "e")},                       // false
		{Pos(OnTop, "l", "g"), Pos(Above, "f", "k")}, // true & true
	}
	is.True(f.Holds(s))

	// A clause fails when any literal does.
	f = Formula{{Pos(OnTop, "l", "g"), Pos(Holding, "e")}}
	is.True(!f.Holds(s))

	is.True(!Formula{}.Holds(s))
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	s := world.SmallWorld()

	is.NoErr(Formula{{Pos(OnTop, "e", world.Floor)}}.Validate(s))
	is.NoErr(Formula{{Pos(Holding, "m")}}.Validate(s))

	err := Formula{{Pos(Holding, "zz")}}.Validate(s)
	is.True(errors.Is(err, ErrInvalidReference))

	err = Formula{{Literal{Polarity: false, Relation: Holding, Args: []string{"e"}}}}.Validate(s)
	is.True(errors.Is(err, ErrNegationUnsupported))

	err = Formula{{Pos("fastenedto", "e", "f")}}.Validate(s)
	is.True(errors.Is(err, ErrMalformedGoal))

	err = Formula{{Pos(OnTop, "e")}}.Validate(s)
	is.True(errors.Is(err, ErrMalformedGoal)) // arity

	err = Formula{{Pos(Beside, "e", world.Floor)}}.Validate(s)
	is.True(errors.Is(err, ErrMalformedGoal)) // floor not beside anything

	err = Formula{{Pos(OnTop, world.Floor, "e")}}.Validate(s)
	is.True(errors.Is(err, ErrMalformedGoal)) // floor as first argument

	err = Formula{}.Validate(s)
	is.True(errors.Is(err, ErrMalformedGoal))
}

func TestFormulaFromYAML(t *testing.T) {
	is := is.New(t)
	f, err := FromYAML([]byte(`
- - relation: ontop
    args: [a, b]
  - relation: beside
    args: [c, d]
- - relation: holding
    args: [a]
    negated: true
`))
	is.NoErr(err)
	is.Equal(len(f), 2)
	is.Equal(f[0][0], Pos(OnTop, "a", "b"))
	is.Equal(f[0][1], Pos(Beside, "c", "d"))
	is.Equal(f[1][0].Polarity, false)
	is.Equal(f[1][0].Relation, Holding)
}
