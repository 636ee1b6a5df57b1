package gridsearch

import (
	"context"
	"fmt"

	"tailscale.com/types/logger"
)

// CostFunc returns the cost of stepping from one cell to an axis-adjacent
// cell. It must not return a negative value. A float +Inf blocks the step.
type CostFunc[T Number] func(from, to Pt, g Grid[T]) T

// PassFunc reports whether the step from one cell to an axis-adjacent cell
// may be taken at all.
type PassFunc[T Number] func(from, to Pt, g Grid[T]) bool

// EnterCost charges the value of the destination cell.
func EnterCost[T Number](_, to Pt, g Grid[T]) T {
	return g.At(to)
}

// UnitCost charges 1 for every step, so path cost is the number of hops.
func UnitCost[T Number](_, _ Pt, _ Grid[T]) T {
	return 1
}

// MaxRise returns a PassFunc that rejects steps onto a cell more than limit
// higher than the current one. Descending is always allowed.
func MaxRise[T Number](limit T) PassFunc[T] {
	return func(from, to Pt, g Grid[T]) bool {
		a, b := g.At(from), g.At(to)
		return b <= a || b-a <= limit
	}
}

// ManhattanHeuristic estimates the remaining cost as the manhattan distance
// times minStep. It is admissible when no step costs less than minStep.
func ManhattanHeuristic[T Number](minStep T) func(p, goal Pt) T {
	return func(p, goal Pt) T {
		return T(p.MDist(goal)) * minStep
	}
}

// GridSearch configures searches over a grid. Only Grid and Cost are
// required.
type GridSearch[T Number] struct {
	Grid Grid[T]
	Cost CostFunc[T]
	// Passable, if set, removes the steps it rejects.
	Passable PassFunc[T]
	// Heuristic, if set, turns the search into A*.
	Heuristic func(p, goal Pt) T

	Frontier Frontier
	Logf     logger.Logf
}

func (gs *GridSearch[T]) searcher() *Searcher[Pt, T] {
	g := gs.Grid
	return &Searcher[Pt, T]{
		Neighbors: func(p Pt, f func(Pt) bool) {
			g.ForImmediateNeighbors(p, func(n Pt) bool {
				if gs.Passable != nil && !gs.Passable(p, n, g) {
					return true
				}
				return f(n)
			})
		},
		Cost: func(from, to Pt) T {
			return gs.Cost(from, to, g)
		},
		Heuristic: gs.Heuristic,
		Frontier:  gs.Frontier,
		Logf:      gs.Logf,
	}
}

func (gs *GridSearch[T]) checkBounds(pts ...Pt) error {
	for _, p := range pts {
		if !gs.Grid.Contains(p) {
			return fmt.Errorf("%w: %v not in %v grid", ErrOutOfBounds, p, gs.Grid.Size())
		}
	}
	return nil
}

// Search returns a minimum-cost path from start to goal. If the goal is
// unreachable the Result has Found unset and no error is returned.
func (gs *GridSearch[T]) Search(ctx context.Context, start, goal Pt) (Result[Pt, T], error) {
	if err := gs.checkBounds(start, goal); err != nil {
		return Result[Pt, T]{}, err
	}
	res, err := gs.searcher().Search(ctx, start, goal)
	if err != nil {
		return res, err
	}
	if res.Found && gs.Logf != nil {
		gs.Logf("path %v -> %v: %s", start, goal, Directions(res.Path))
	}
	return res, nil
}

// SearchAll runs an independent search from each start to goal, at most
// limit at a time (limit <= 0 means no limit). Results are in the order of
// starts.
func (gs *GridSearch[T]) SearchAll(ctx context.Context, starts []Pt, goal Pt, limit int) ([]Result[Pt, T], error) {
	if err := gs.checkBounds(append([]Pt{goal}, starts...)...); err != nil {
		return nil, err
	}
	s := gs.searcher()
	return Parallel(ctx, starts, limit, func(ctx context.Context, start Pt) (Result[Pt, T], error) {
		return s.Search(ctx, start, goal)
	})
}

// Best returns the cheapest found result, preferring the earliest on ties.
func Best[K comparable, C Number](results []Result[K, C]) (Result[K, C], bool) {
	var best Result[K, C]
	for _, r := range results {
		if r.Found && (!best.Found || r.Cost < best.Cost) {
			best = r
		}
	}
	return best, best.Found
}

// FindPath returns a minimum-cost path from start to goal over grid, moving
// only between axis-adjacent cells. The path is in start-to-goal order and
// includes both ends; it has a single element if start == goal and is empty
// if goal cannot be reached.
//
// grid is not modified. cost must never be negative.
func FindPath[T Number](grid Grid[T], start, goal Pt, cost CostFunc[T]) ([]Pt, error) {
	gs := GridSearch[T]{Grid: grid, Cost: cost}
	res, err := gs.Search(context.Background(), start, goal)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// PathCost returns the sum of cost over each step of path.
func PathCost[T Number](grid Grid[T], path []Pt, cost CostFunc[T]) T {
	steps := make([]T, 0, len(path))
	for i := 1; i < len(path); i++ {
		steps = append(steps, cost(path[i-1], path[i], grid))
	}
	return Sum(steps...)
}
