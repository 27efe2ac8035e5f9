package astar

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/blockplan/blockplan/pqueue"
)

var (
	// ErrTimeout means the wall-clock budget ran out before a goal was
	// found. No partial path is returned.
	ErrTimeout = errors.New("search timed out")
	// ErrNoPlanFound means the open set was exhausted: no goal state is
	// reachable from the start.
	ErrNoPlanFound = errors.New("no plan found")
)

// Solver runs best-first search over one graph. A Solver may be reused for
// several Solve calls; each call's frontier, closed set and predecessor map
// are private to that call and discarded when it returns.
type Solver[T State[T]] struct {
	graph  Graph[T]
	isGoal func(T) bool
	heur   func(T) int

	timeout    time.Duration
	hasTimeout bool

	nodes atomic.Uint64
}

// New creates a solver. heur must never overestimate the true remaining
// cost if the returned cost is to be minimal; a nil heur means h = 0
// (plain uniform-cost search).
func New[T State[T]](graph Graph[T], isGoal func(T) bool, heur func(T) int) *Solver[T] {
	if heur == nil {
		heur = func(T) int { return 0 }
	}
	return &Solver[T]{graph: graph, isGoal: isGoal, heur: heur}
}

// SetTimeout bounds each Solve call's wall clock. A zero timeout expires
// immediately; every Solve then fails with ErrTimeout.
func (s *Solver[T]) SetTimeout(d time.Duration) {
	s.timeout = d
	s.hasTimeout = true
}

// Nodes returns the number of nodes expanded by the last Solve call.
func (s *Solver[T]) Nodes() uint64 {
	return s.nodes.Load()
}

// Solve searches from start until a goal node is popped, the frontier
// empties (ErrNoPlanFound), the timeout elapses (ErrTimeout), or ctx is
// canceled. The search itself is single-threaded; time is sampled once per
// loop iteration, before each pop.
func (s *Solver[T]) Solve(ctx context.Context, start T) (*Result[T], error) {
	tstart := time.Now()
	if s.hasTimeout {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.nodes.Store(0)

	g := &errgroup.Group{}
	done := make(chan bool)
	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().Uint64("nps", nodes-lastNodes).Msg("nodes-per-second")
				lastNodes = nodes
			}
		}
	})

	result, err := s.loop(ctx, start)
	close(done)
	_ = g.Wait()

	ev := log.Debug().
		Uint64("nodes-expanded", s.nodes.Load()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds())
	if result != nil {
		ev = ev.Int("cost", result.Cost)
	}
	ev.Err(err).Msg("solve-returning")
	return result, err
}

func (s *Solver[T]) loop(ctx context.Context, start T) (*Result[T], error) {
	// Bookkeeping is keyed by canonical node key; byKey holds the best
	// known allocation for each key so paths can be reconstructed.
	gScore := map[string]int{start.Key(): 0}
	fScore := map[string]int{start.Key(): s.heur(start)}
	cameFrom := map[string]string{}
	byKey := map[string]T{start.Key(): start}
	closed := map[string]bool{}

	open := pqueue.New[T](
		func(a, b T) bool { return fScore[a.Key()] < fScore[b.Key()] },
		func(a, b T) bool { return a.Equals(b) },
	)
	open.Insert(start)

	for {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, ErrTimeout
			}
			return nil, err
		}
		if open.Len() == 0 {
			return nil, ErrNoPlanFound
		}
		current, err := open.ExtractMin()
		if err != nil {
			return nil, err
		}
		curKey := current.Key()
		if s.isGoal(current) {
			return &Result[T]{
				Path: s.reconstruct(current, cameFrom, byKey),
				Cost: gScore[curKey],
			}, nil
		}
		closed[curKey] = true
		s.nodes.Add(1)

		for _, edge := range s.graph.EdgesFrom(current) {
			key := edge.To.Key()
			if closed[key] {
				continue
			}
			tentative := gScore[curKey] + edge.Cost
			known, seen := gScore[key]
			if seen && tentative >= known {
				continue
			}
			cameFrom[key] = curKey
			byKey[key] = edge.To
			gScore[key] = tentative
			if seen {
				// Same h as before; only the g part moved.
				fScore[key] += tentative - known
				open.DecreaseKey(edge.To)
			} else {
				fScore[key] = tentative + s.heur(edge.To)
				open.Insert(edge.To)
			}
		}
	}
}

func (s *Solver[T]) reconstruct(goal T, cameFrom map[string]string, byKey map[string]T) []T {
	path := []T{goal}
	key := goal.Key()
	for {
		parent, ok := cameFrom[key]
		if !ok {
			break
		}
		path = append(path, byKey[parent])
		key = parent
	}
	return lo.Reverse(path)
}
