package logic

import (
	"errors"
	"fmt"

	"github.com/blockplan/blockplan/world"
)

var (
	// ErrInvalidReference means a literal names an object the world does
	// not contain. That is a contract violation by the upstream
	// interpreter, so it fails fast instead of being skipped.
	ErrInvalidReference = errors.New("goal refers to an unknown object")
	// ErrNegationUnsupported flags a polarity-false literal. Negation is a
	// declared extension point with no planning semantics yet.
	ErrNegationUnsupported = errors.New("negated literals are not supported")
	// ErrMalformedGoal covers structural problems: unknown relations, bad
	// arity, a misplaced floor sentinel, or an empty formula.
	ErrMalformedGoal = errors.New("malformed goal formula")
)

// Validate checks the formula against the world before any search runs.
// It returns the first problem found.
func (f Formula) Validate(s *world.State) error {
	if len(f) == 0 {
		return fmt.Errorf("%w: formula has no clauses", ErrMalformedGoal)
	}
	for _, c := range f {
		for _, l := range c {
			if err := l.validate(s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l Literal) validate(s *world.State) error {
	if !l.Polarity {
		return fmt.Errorf("%w: %v", ErrNegationUnsupported, l)
	}
	want, known := arities[l.Relation]
	if !known {
		return fmt.Errorf("%w: unknown relation %q", ErrMalformedGoal, l.Relation)
	}
	if len(l.Args) != want {
		return fmt.Errorf("%w: %v wants %d argument(s), got %d",
			ErrMalformedGoal, l.Relation, want, len(l.Args))
	}
	for i, arg := range l.Args {
		if arg == world.Floor {
			if i == 0 || !floorAllowed(l.Relation) {
				return fmt.Errorf("%w: floor cannot be argument %d of %v",
					ErrMalformedGoal, i, l.Relation)
			}
			continue
		}
		if !s.Has(arg) {
			return fmt.Errorf("%w: %q", ErrInvalidReference, arg)
		}
	}
	return nil
}
