package gridsearch

import (
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a 2D array of cells indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// Contains reports whether p is a cell of g. Rows may differ in length.
func (g Grid[T]) Contains(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// DigitGrid builds a grid from rows of decimal digits.
func DigitGrid(lines ...string) (Grid[int], error) {
	out := make(Grid[int], 0, len(lines))
	for _, l := range lines {
		row, err := Digits(strings.TrimSpace(l))
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// Hash returns a fingerprint of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// Size returns the width of the first row and the number of rows.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForImmediateNeighbors calls f with each of the up to four cells sharing an
// edge with p, in Up, Right, Down, Left order. Positions outside the grid are
// skipped.
func (g Grid[T]) ForImmediateNeighbors(p Pt, f func(Pt) (keepGoing bool)) {
	for d := Up; d <= Left; d++ {
		n, ok := g.Move(Path{Pt: p, Dir: d})
		if !ok {
			continue
		}
		if !f(n.Pt) {
			return
		}
	}
}

// ToGraph converts the grid into a directed graph with an arc for every
// step between adjacent cells. Steps rejected by passable (if non-nil) or
// costing +Inf are left out.
func (g Grid[T]) ToGraph(cost CostFunc[T], passable PassFunc[T]) *Graph[Pt, T] {
	var out Graph[Pt, T]
	for y, row := range g {
		for x := range row {
			p1 := Pt{x, y}
			out.AddNode(p1)
			g.ForImmediateNeighbors(p1, func(p2 Pt) bool {
				if passable != nil && !passable(p1, p2, g) {
					return true
				}
				if c := cost(p1, p2, g); !isInf(c) {
					out.AddArc(p1, p2, c)
				}
				return true
			})
		}
	}
	return &out
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move returns p moved one cell in its direction, or false if that leaves
// the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	switch p.Dir {
	case Up:
		p.Pt.Y--
	case Right:
		p.Pt.X++
	case Down:
		p.Pt.Y++
	case Left:
		p.Pt.X--
	}
	if !g.Contains(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// DirectionTo returns the direction of the single step from p to q. It
// returns false if q is not axis-adjacent to p.
func (p Pt2[T]) DirectionTo(q Pt2[T]) (Direction, bool) {
	switch (Pt2[T]{q.X - p.X, q.Y - p.Y}) {
	case Pt2[T]{0, -1}:
		return Up, true
	case Pt2[T]{1, 0}:
		return Right, true
	case Pt2[T]{0, 1}:
		return Down, true
	case Pt2[T]{-1, 0}:
		return Left, true
	}
	return 0, false
}

// Directions renders the steps of path, e.g. ">>v>".
// Non-adjacent pairs are shown as '?'.
func Directions(path []Pt) string {
	var sb strings.Builder
	for i := 1; i < len(path); i++ {
		d, ok := path[i-1].DirectionTo(path[i])
		if !ok {
			sb.WriteByte('?')
			continue
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
