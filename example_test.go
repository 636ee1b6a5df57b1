package gridsearch_test

import (
	"context"
	"fmt"

	"github.com/maisem/gridsearch"
)

func ExampleFindPath() {
	grid := gridsearch.MustGet(gridsearch.DigitGrid(
		"116",
		"191",
		"111",
	))
	path := gridsearch.MustGet(gridsearch.FindPath(grid, gridsearch.Pt{}, gridsearch.Pt{X: 2, Y: 2}, gridsearch.EnterCost[int]))
	fmt.Println(path)
	fmt.Println(gridsearch.Directions(path), gridsearch.PathCost(grid, path, gridsearch.EnterCost[int]))
	// Output:
	// [{0 0} {0 1} {0 2} {1 2} {2 2}]
	// vv>> 4
}

func ExampleGridSearch_SearchAll() {
	// Heights 0-9; a step may climb at most one.
	grid := gridsearch.MustGet(gridsearch.DigitGrid(
		"0123",
		"0894",
		"0765",
	))
	gs := gridsearch.GridSearch[int]{
		Grid:     grid,
		Cost:     gridsearch.UnitCost[int],
		Passable: gridsearch.MaxRise(1),
	}
	starts := []gridsearch.Pt{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	results := gridsearch.MustGet(gs.SearchAll(context.Background(), starts, gridsearch.Pt{X: 2, Y: 1}, 0))
	best, _ := gridsearch.Best(results)
	fmt.Println(best.Path[0], best.Cost)
	// Output:
	// {0 0} 9
}
