package gridsearch

import (
	"context"
	"fmt"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph held as adjacency maps. Edges[a][b] is the cost
// of stepping from a to b.
type Graph[K comparable, C Number] struct {
	Nodes map[K]bool
	Edges map[K]map[K]C
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K, C]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K, C]) RemoveNode(a K) {
	for _, e := range g.Edges {
		delete(e, a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K, C]) AddArc(a, b K, dist C) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]C)
	}
	g.Edges[a][b] = dist
}

// AddEdge adds an undirected edge between a and b.
func (g *Graph[K, C]) AddEdge(a, b K, dist C) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

func (g *Graph[K, C]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// ReachableNodes returns every node reachable from a, a included.
func (g *Graph[K, C]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// Searcher returns a Searcher that walks the graph's edges.
func (g *Graph[K, C]) Searcher() *Searcher[K, C] {
	return &Searcher[K, C]{
		Neighbors: func(k K, f func(K) bool) {
			for n := range g.Edges[k] {
				if !f(n) {
					return
				}
			}
		},
		Cost: func(from, to K) C {
			return g.Edges[from][to]
		},
	}
}

// ShortestPath returns a minimum-cost path from start to end.
func (g *Graph[K, C]) ShortestPath(ctx context.Context, start, end K) (Result[K, C], error) {
	for _, k := range []K{start, end} {
		if !g.Nodes[k] {
			return Result[K, C]{}, fmt.Errorf("%w: %v", ErrNoNode, k)
		}
	}
	return g.Searcher().Search(ctx, start, end)
}

// AllShortestPaths returns the cost of the cheapest path between every
// ordered pair of connected nodes, using Floyd–Warshall. Pairs with no path
// are absent.
func (g *Graph[K, C]) AllShortestPaths() map[Edge[K]]C {
	nodes := maps.Keys(g.Nodes)
	dist := map[Edge[K]]C{}
	for _, k := range nodes {
		dist[Edge[K]{k, k}] = 0
		for k2, v := range g.Edges[k] {
			if k2 == k {
				continue
			}
			dist[Edge[K]{k, k2}] = v
		}
	}
	for _, via := range nodes {
		for _, from := range nodes {
			d1, ok := dist[Edge[K]{from, via}]
			if !ok {
				continue
			}
			for _, to := range nodes {
				d2, ok := dist[Edge[K]{via, to}]
				if !ok {
					continue
				}
				if d, ok := dist[Edge[K]{from, to}]; !ok || d1+d2 < d {
					dist[Edge[K]{from, to}] = d1 + d2
				}
			}
		}
	}
	return dist
}

// Edge is an ordered pair of nodes.
type Edge[T comparable] struct {
	A, B T
}
