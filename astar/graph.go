// Package astar is a generic best-first search engine. It knows nothing
// about block worlds; it consumes a graph whose edges are enumerated on the
// fly from a node, a goal predicate and a heuristic, and returns a cheapest
// path. With an admissible heuristic the returned cost is minimal.
package astar

// State is the node type the engine searches over. Equality must be by
// value, not identity: graphs regenerate nodes on every expansion, so the
// same logical state arrives as distinct allocations. Key returns a
// canonical string consistent with Equals, used for the engine's closed-set
// and score bookkeeping.
type State[T any] interface {
	Equals(other T) bool
	Key() string
}

// Edge is one directed transition out of a node.
type Edge[T State[T]] struct {
	To   T
	Cost int
}

// Graph enumerates outgoing edges lazily. No graph structure is ever
// materialized; this single method is the whole abstraction.
type Graph[T State[T]] interface {
	EdgesFrom(n T) []Edge[T]
}

// Result is a completed search: the node path from start to goal inclusive,
// and the accumulated cost along it.
type Result[T State[T]] struct {
	Path []T
	Cost int
}
