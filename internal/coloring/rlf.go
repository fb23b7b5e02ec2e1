package coloring

import (
	"maps"
	"slices"

	"coursegraph/internal/graph"
)

// rlfColor builds one color class per outer iteration. Two frontiers are
// kept per class: eligible vertices (still independent of the class under
// construction) and excluded vertices (adjacent to it, ruled out for this
// class). A class opens with the eligible vertex of maximum degree among
// the unclassified vertices; subsequent picks maximize neighbors in the
// excluded set, ties broken by degree and then lowest id. When eligible
// drains, excluded seeds the next class's eligible set.
func rlfColor(g *graph.Graph) Coloring {
	vertices := g.Vertices()
	coloring := newColoring(len(vertices))

	uncolored := make(map[uint64]bool, len(vertices))
	for _, vertex := range vertices {
		uncolored[vertex] = true
	}

	var color uint64 = 0
	for len(uncolored) > 0 {
		eligible := maps.Clone(uncolored)
		excluded := make(map[uint64]bool)

		first := true
		for len(eligible) > 0 {
			var vertex uint64
			if first {
				vertex = maxUncoloredDegree(g, eligible, uncolored)
				first = false
			} else {
				vertex = maxExcludedNeighbors(g, eligible, excluded)
			}

			coloring.assign(vertex, color)
			delete(eligible, vertex)
			delete(uncolored, vertex)
			for _, neighbor := range g.Neighbors(vertex) {
				if eligible[neighbor] {
					delete(eligible, neighbor)
					excluded[neighbor] = true
				}
			}
		}
		color++
	}

	coloring.normalize()
	return coloring
}

// maxUncoloredDegree picks the eligible vertex with the most uncolored
// neighbors, lowest id on ties.
func maxUncoloredDegree(g *graph.Graph, eligible, uncolored map[uint64]bool) uint64 {
	best, bestDegree := uint64(0), -1
	for _, vertex := range slices.Sorted(maps.Keys(eligible)) {
		degree := 0
		for _, neighbor := range g.Neighbors(vertex) {
			if uncolored[neighbor] {
				degree++
			}
		}
		if degree > bestDegree {
			best, bestDegree = vertex, degree
		}
	}
	return best
}

// maxExcludedNeighbors picks the eligible vertex with the most neighbors
// already ruled out for the current class, ties broken by degree within
// the eligible set and then lowest id.
func maxExcludedNeighbors(g *graph.Graph, eligible, excluded map[uint64]bool) uint64 {
	best := uint64(0)
	bestExcluded, bestEligible := -1, -1
	for _, vertex := range slices.Sorted(maps.Keys(eligible)) {
		inExcluded, inEligible := 0, 0
		for _, neighbor := range g.Neighbors(vertex) {
			if excluded[neighbor] {
				inExcluded++
			}
			if eligible[neighbor] {
				inEligible++
			}
		}
		if inExcluded > bestExcluded || (inExcluded == bestExcluded && inEligible > bestEligible) {
			best, bestExcluded, bestEligible = vertex, inExcluded, inEligible
		}
	}
	return best
}
