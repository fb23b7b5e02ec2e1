package coloring

import (
	"fmt"

	"coursegraph/internal/graph"
)

// greedyColor processes vertices in the supplied order, assigning each
// the first color class (in creation order) with no adjacent member and
// opening a new class when none fits. An adversarial order can force up
// to MaxDegree+1 colors and an order derived from an optimal coloring
// reproduces it; that sensitivity is a documented property of the
// strategy.
func greedyColor(g *graph.Graph, order []uint64) (Coloring, error) {
	if err := checkPermutation(g, order); err != nil {
		return Coloring{}, err
	}

	coloring := newColoring(len(order))
	for _, vertex := range order {
		coloring.assign(vertex, lowestFree(g, coloring, vertex))
	}
	coloring.normalize()
	return coloring, nil
}

func checkPermutation(g *graph.Graph, order []uint64) error {
	if uint64(len(order)) != g.VertexCount() {
		return fmt.Errorf("order has %v vertices, graph has %v", len(order), g.VertexCount())
	}
	seen := make(map[uint64]bool, len(order))
	for _, vertex := range order {
		if !g.HasVertex(vertex) {
			return fmt.Errorf("order contains unknown vertex %v", vertex)
		}
		if seen[vertex] {
			return fmt.Errorf("order repeats vertex %v", vertex)
		}
		seen[vertex] = true
	}
	return nil
}
