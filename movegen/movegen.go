// Package movegen implements the search graph over block-world snapshots.
// Edges are generated lazily by simulating each primitive action against a
// node's state; nothing is precomputed and no graph is materialized.
package movegen

import (
	"fmt"

	"github.com/blockplan/blockplan/astar"
	"github.com/blockplan/blockplan/world"
)

// Node wraps a snapshot together with the action that produced it from its
// predecessor. The start node carries no action. Identity is the state's:
// two nodes are equal iff their snapshots are structurally equal,
// regardless of how they were reached.
type Node struct {
	State *world.State
	Via   world.Action
	Start bool
}

// StartNode wraps the initial snapshot.
func StartNode(s *world.State) Node {
	return Node{State: s, Start: true}
}

func (n Node) Equals(o Node) bool {
	return n.State.Equals(o.State)
}

func (n Node) Key() string {
	return n.State.Key()
}

func (n Node) String() string {
	if n.Start {
		return "start " + n.State.String()
	}
	return n.Via.String() + " -> " + n.State.String()
}

// Generator enumerates the outgoing edges of a node: one cost-1 edge per
// primitive action that is legal in the node's state. Illegal actions are
// omitted, never errors.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) EdgesFrom(n Node) []astar.Edge[Node] {
	edges := make([]astar.Edge[Node], 0, len(world.Actions))
	for _, a := range world.Actions {
		next, ok := n.State.Apply(a)
		if !ok {
			continue
		}
		edges = append(edges, astar.Edge[Node]{
			To:   Node{State: next, Via: a},
			Cost: 1,
		})
	}
	return edges
}

// Replay applies an action sequence to a starting snapshot through the same
// transition function the search uses, returning the final snapshot. It
// fails if any action is illegal where it occurs; tests use it to check
// plan soundness.
func Replay(s *world.State, actions []world.Action) (*world.State, error) {
	cur := s
	for i, a := range actions {
		next, ok := cur.Apply(a)
		if !ok {
			return nil, fmt.Errorf("action %d (%v) is illegal in state %v", i, a, cur)
		}
		cur = next
	}
	return cur, nil
}
