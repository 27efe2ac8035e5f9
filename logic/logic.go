// Package logic defines the goal language the planner consumes: literals
// over spatial relations, conjunctive clauses, and DNF formulas. These are
// the output contract of the semantic interpreter and are treated as
// immutable value objects here.
package logic

import (
	"strings"
)

// Relation names an atomic spatial claim.
type Relation string

const (
	Holding Relation = "holding"
	OnTop   Relation = "ontop"
	Inside  Relation = "inside"
	Above   Relation = "above"
	Under   Relation = "under"
	Beside  Relation = "beside"
	LeftOf  Relation = "leftof"
	RightOf Relation = "rightof"
)

// arities maps each known relation to its argument count.
var arities = map[Relation]int{
	Holding: 1,
	OnTop:   2,
	Inside:  2,
	Above:   2,
	Under:   2,
	Beside:  2,
	LeftOf:  2,
	RightOf: 2,
}

// Literal is one atomic claim. Args holds object identifiers; the second
// argument of ontop, inside or above may be the floor sentinel. Polarity
// false declares a negated literal, which the planner does not support and
// rejects at formula-acceptance time.
type Literal struct {
	Polarity bool
	Relation Relation
	Args     []string
}

// Pos builds a positive literal.
func Pos(rel Relation, args ...string) Literal {
	return Literal{Polarity: true, Relation: rel, Args: args}
}

func (l Literal) String() string {
	var sb strings.Builder
	if !l.Polarity {
		sb.WriteByte('-')
	}
	sb.WriteString(string(l.Relation))
	sb.WriteByte('(')
	sb.WriteString(strings.Join(l.Args, ","))
	sb.WriteByte(')')
	return sb.String()
}

// Clause is a conjunction of literals; it holds when all of them do.
type Clause []Literal

// Formula is a goal in disjunctive normal form: it holds when any one of
// its clauses does.
type Formula []Clause

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return strings.Join(parts, " & ")
}

func (f Formula) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = "(" + c.String() + ")"
	}
	return strings.Join(parts, " | ")
}

// floorAllowed reports whether the floor sentinel is meaningful as the
// second argument of rel.
func floorAllowed(rel Relation) bool {
	switch rel {
	case OnTop, Inside, Above:
		return true
	}
	return false
}
