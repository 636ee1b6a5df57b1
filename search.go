// Package gridsearch finds minimum-cost paths over 2D grids and small
// weighted graphs. It grew out of the grid and graph helpers used for
// Advent of Code puzzles (forked from maisem/aoc).
//
// Costs are caller supplied and must be non-negative. Paths are returned in
// start-to-goal order and include both endpoints.
package gridsearch

import (
	"context"
	"errors"
	"fmt"

	"tailscale.com/types/logger"
)

var (
	// ErrOutOfBounds is returned when a start or goal is not a cell of the
	// grid being searched.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNoNode is returned when a start or goal is not a node of the graph
	// being searched.
	ErrNoNode = errors.New("node not in graph")
	// ErrNegativeCost is returned when a cost function yields a negative
	// step cost.
	ErrNegativeCost = errors.New("negative step cost")
)

// Frontier selects how pending nodes are ordered during a search.
type Frontier int

const (
	// PriorityFrontier expands the node with the lowest cost (plus heuristic)
	// first and stops as soon as the goal is expanded.
	PriorityFrontier Frontier = iota
	// FIFOFrontier expands nodes in the order they were last improved and
	// only stops once nothing can be improved any more.
	FIFOFrontier
)

func (f Frontier) String() string {
	switch f {
	case PriorityFrontier:
		return "priority"
	case FIFOFrontier:
		return "fifo"
	}
	return fmt.Sprintf("Frontier(%d)", int(f))
}

// Result is the outcome of a search.
type Result[K comparable, C Number] struct {
	// Path runs from start to goal, both included. It is nil if the goal is
	// unreachable.
	Path []K
	// Cost is the total cost of Path.
	Cost C
	// Expanded is the number of frontier pops.
	Expanded int
	Found    bool
}

// Searcher runs uniform-cost (or A*, with a Heuristic) searches over an
// implicit graph.
//
// A Searcher holds no per-search state and may be used from multiple
// goroutines at once, as long as its functions are safe to do so.
type Searcher[K comparable, C Number] struct {
	// Neighbors calls f for every node reachable from k in one step. It
	// stops early if f returns false.
	Neighbors func(k K, f func(K) (keepGoing bool))
	// Cost returns the cost of stepping from one node to an adjacent one.
	// A cost of +Inf means the step is not taken.
	Cost func(from, to K) C
	// Heuristic optionally estimates the remaining cost from k to goal. It
	// must never overestimate. Only used by PriorityFrontier.
	Heuristic func(k, goal K) C

	Frontier Frontier
	Logf     logger.Logf
}

// search is the state of a single Search call.
type search[K comparable, C Number] struct {
	s    *Searcher[K, C]
	goal K
	cost map[K]C // best known cost from start
	prev map[K]K // predecessor on the best known path; start maps to itself
	err  error
}

func (s *Searcher[K, C]) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// Search returns a minimum-cost path from start to goal.
//
// An unreachable goal is not an error: the returned Result has Found unset
// and a nil Path. ctx is checked once per expanded node.
func (s *Searcher[K, C]) Search(ctx context.Context, start, goal K) (Result[K, C], error) {
	st := &search[K, C]{
		s:    s,
		goal: goal,
		cost: map[K]C{start: 0},
		prev: map[K]K{start: start},
	}
	var (
		res Result[K, C]
		err error
	)
	switch s.Frontier {
	case PriorityFrontier:
		res.Expanded, err = st.runPriority(ctx, start)
	case FIFOFrontier:
		res.Expanded, err = st.runFIFO(ctx, start)
	default:
		return res, fmt.Errorf("unknown frontier %v", s.Frontier)
	}
	if err != nil {
		return res, err
	}
	c, ok := st.cost[goal]
	if !ok {
		s.logf("search %v: %v -> %v unreachable after %d expansions", s.Frontier, start, goal, res.Expanded)
		return res, nil
	}
	res.Path = st.backtrack()
	res.Cost = c
	res.Found = true
	s.logf("search %v: %v -> %v cost %v, %d steps, %d expansions", s.Frontier, start, goal, c, len(res.Path)-1, res.Expanded)
	return res, nil
}

func (st *search[K, C]) runPriority(ctx context.Context, start K) (expanded int, err error) {
	h := func(k K) C {
		if st.s.Heuristic == nil {
			return 0
		}
		return st.s.Heuristic(k, st.goal)
	}
	q := MinQueue[K, C]()
	items := map[K]*PQI[K, C]{}
	push := func(k K) {
		p := st.cost[k] + h(k)
		if it, ok := items[k]; ok && it.Index() != -1 {
			it.P = p
			q.Update(it)
			return
		}
		it := &PQI[K, C]{V: k, P: p}
		items[k] = it
		q.Push(it)
	}
	push(start)
	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return expanded, err
		}
		cur := q.Pop().V
		expanded++
		if cur == st.goal {
			return expanded, nil
		}
		if err := st.expand(cur, push); err != nil {
			return expanded, err
		}
	}
	return expanded, nil
}

func (st *search[K, C]) runFIFO(ctx context.Context, start K) (expanded int, err error) {
	q := NewQueue(start)
	q.While(func(cur K) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		expanded++
		err = st.expand(cur, q.Push)
		return err == nil
	})
	return expanded, err
}

// expand relaxes every edge out of cur, calling push for each neighbor whose
// best known cost improved.
func (st *search[K, C]) expand(cur K, push func(K)) error {
	base := st.cost[cur]
	st.s.Neighbors(cur, func(n K) bool {
		step := st.s.Cost(cur, n)
		if step < 0 {
			st.err = fmt.Errorf("%w: %v -> %v costs %v", ErrNegativeCost, cur, n, step)
			return false
		}
		if isInf(step) {
			return true
		}
		c := base + step
		if old, ok := st.cost[n]; ok && c >= old {
			return true
		}
		st.cost[n] = c
		st.prev[n] = cur
		push(n)
		return true
	})
	return st.err
}

// backtrack follows predecessor links from the goal to the start and
// returns the path in start-to-goal order.
func (st *search[K, C]) backtrack() []K {
	var s Stack[K]
	cur := st.goal
	s.Push(cur)
	for i := 0; i < len(st.prev); i++ {
		p := st.prev[cur]
		if p == cur {
			break
		}
		s.Push(p)
		cur = p
	}
	return s.Drain()
}
