package graph

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Graph is a finite simple undirected graph over uint64 vertex ids. The
// zero value is not usable; construct with New.
type Graph struct {
	adjacency map[uint64]map[uint64]bool
}

func New() *Graph {
	return &Graph{
		adjacency: make(map[uint64]map[uint64]bool),
	}
}

func (graph *Graph) AddVertex(vertex uint64) error {
	if _, ok := graph.adjacency[vertex]; ok {
		return fmt.Errorf("vertex %v already exists", vertex)
	}
	graph.adjacency[vertex] = make(map[uint64]bool)
	return nil
}

// AddEdge adds an undirected edge between u and v, creating the endpoints
// if they do not exist yet. Self-loops and duplicate edges are rejected.
func (graph *Graph) AddEdge(u, v uint64) error {
	if u == v {
		return fmt.Errorf("self-loop on vertex %v is not allowed", u)
	}
	if _, ok := graph.adjacency[u]; !ok {
		graph.adjacency[u] = make(map[uint64]bool)
	}
	if _, ok := graph.adjacency[v]; !ok {
		graph.adjacency[v] = make(map[uint64]bool)
	}
	if graph.adjacency[u][v] {
		return fmt.Errorf("edge (%v, %v) already exists", u, v)
	}
	graph.adjacency[u][v] = true
	graph.adjacency[v][u] = true
	return nil
}

func (graph *Graph) HasVertex(vertex uint64) bool {
	_, ok := graph.adjacency[vertex]
	return ok
}

func (graph *Graph) HasEdge(u, v uint64) bool {
	return graph.adjacency[u][v]
}

// Vertices returns the vertex set in ascending order, so iteration over a
// graph is deterministic.
func (graph *Graph) Vertices() []uint64 {
	vertices := lo.Keys(graph.adjacency)
	slices.Sort(vertices)
	return vertices
}

// Neighbors returns the adjacent vertices of vertex in ascending order.
// Unknown vertices have no neighbors.
func (graph *Graph) Neighbors(vertex uint64) []uint64 {
	neighbors := lo.Keys(graph.adjacency[vertex])
	slices.Sort(neighbors)
	return neighbors
}

func (graph *Graph) Degree(vertex uint64) uint64 {
	return uint64(len(graph.adjacency[vertex]))
}

func (graph *Graph) MaxDegree() uint64 {
	return lo.Max(graph.degrees())
}

func (graph *Graph) VertexCount() uint64 {
	return uint64(len(graph.adjacency))
}

func (graph *Graph) EdgeCount() uint64 {
	return lo.Sum(graph.degrees()) / 2
}

func (graph *Graph) degrees() []uint64 {
	return lo.Map(lo.Values(graph.adjacency), func(neighbors map[uint64]bool, _ int) uint64 {
		return uint64(len(neighbors))
	})
}
