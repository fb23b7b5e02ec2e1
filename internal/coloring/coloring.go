// Package coloring provides three interchangeable proper-coloring
// strategies over undirected graphs: Greedy (order-driven), DSatur
// (saturation-driven) and RLF (class-at-a-time). Strategies are tagged
// variants dispatched by Color; they differ in control flow only, so no
// type hierarchy is involved.
package coloring

import (
	"fmt"
	"slices"

	"coursegraph/internal/graph"

	"github.com/samber/lo"
)

// Coloring maps every vertex to a color in 0..len(Classes)-1 such that no
// two adjacent vertices share one. Classes partition the vertex set into
// independent sets; each class is ascending.
type Coloring struct {
	Colors  map[uint64]uint64
	Classes [][]uint64
}

func (coloring Coloring) ColorCount() uint64 {
	return uint64(len(coloring.Classes))
}

type strategyKind int

const (
	greedyKind strategyKind = iota
	dsaturKind
	rlfKind
)

type Strategy struct {
	kind  strategyKind
	order []uint64
	seed  int64
}

func (strategy Strategy) String() string {
	switch strategy.kind {
	case greedyKind:
		return "greedy"
	case dsaturKind:
		return "dsatur"
	default:
		return "rlf"
	}
}

// Greedy colors vertices in the given fixed order. The order must be a
// permutation of the graph's vertex set; quality is entirely
// order-dependent.
func Greedy(order []uint64) Strategy {
	return Strategy{kind: greedyKind, order: order}
}

// DSatur selects vertices dynamically by saturation degree. The seed
// drives tie-breaking only; equal seeds give identical colorings.
func DSatur(seed int64) Strategy {
	return Strategy{kind: dsaturKind, seed: seed}
}

// RLF builds one color class per outer iteration. Deterministic; no seed.
func RLF() Strategy {
	return Strategy{kind: rlfKind}
}

// Color produces a proper coloring of g with the given strategy. It
// always succeeds on a finite simple graph, using at most one color per
// vertex; the only error case is a Greedy order that is not a permutation
// of the vertex set.
func Color(g *graph.Graph, strategy Strategy) (Coloring, error) {
	switch strategy.kind {
	case greedyKind:
		return greedyColor(g, strategy.order)
	case dsaturKind:
		return dsaturColor(g, strategy.seed), nil
	case rlfKind:
		return rlfColor(g), nil
	default:
		return Coloring{}, fmt.Errorf("unknown coloring strategy %v", strategy.kind)
	}
}

// assign records the vertex's color, growing the class list as needed.
func (coloring *Coloring) assign(vertex, color uint64) {
	coloring.Colors[vertex] = color
	for uint64(len(coloring.Classes)) <= color {
		coloring.Classes = append(coloring.Classes, make([]uint64, 0))
	}
	coloring.Classes[color] = append(coloring.Classes[color], vertex)
}

// lowestFree returns the smallest color not used by any colored neighbor
// of vertex, i.e. the first color class (in creation order) containing no
// adjacent vertex.
func lowestFree(g *graph.Graph, coloring Coloring, vertex uint64) uint64 {
	used := make(map[uint64]bool)
	for _, neighbor := range g.Neighbors(vertex) {
		if color, ok := coloring.Colors[neighbor]; ok {
			used[color] = true
		}
	}
	var color uint64 = 0
	for used[color] {
		color++
	}
	return color
}

// normalize sorts every color class ascending.
func (coloring *Coloring) normalize() {
	lo.ForEach(coloring.Classes, func(class []uint64, _ int) {
		slices.Sort(class)
	})
}

func newColoring(capacity int) Coloring {
	return Coloring{
		Colors:  make(map[uint64]uint64, capacity),
		Classes: make([][]uint64, 0),
	}
}
