package coloring

import (
	"maps"
	"math/rand"
	"slices"

	"coursegraph/internal/graph"

	"github.com/samber/lo"
)

// saturationState tracks, per uncolored vertex, how many distinct colors
// its colored neighbors carry. Vertices are bucketed by saturation degree
// so the next selection never rescans the whole graph; buckets hold only
// uncolored vertices. Created at algorithm start, discarded at the end.
type saturationState struct {
	saturation     map[uint64]uint64
	neighborColors map[uint64]map[uint64]bool
	buckets        []map[uint64]bool
	highest        int
}

func newSaturationState(vertices []uint64) *saturationState {
	state := &saturationState{
		saturation:     make(map[uint64]uint64, len(vertices)),
		neighborColors: make(map[uint64]map[uint64]bool, len(vertices)),
		buckets:        make([]map[uint64]bool, len(vertices)+1),
		highest:        0,
	}
	for i := range state.buckets {
		state.buckets[i] = make(map[uint64]bool)
	}
	for _, vertex := range vertices {
		state.saturation[vertex] = 0
		state.neighborColors[vertex] = make(map[uint64]bool)
		state.buckets[0][vertex] = true
	}
	return state
}

// selectNext picks an uncolored vertex with maximum saturation degree,
// breaking ties by maximum raw degree and remaining ties by a seeded
// random choice over the sorted tie set, so equal seeds reproduce the
// run.
func (state *saturationState) selectNext(g *graph.Graph, random *rand.Rand) uint64 {
	for state.highest > 0 && len(state.buckets[state.highest]) == 0 {
		state.highest--
	}
	bucket := slices.Sorted(maps.Keys(state.buckets[state.highest]))

	maxDegree := lo.Max(lo.Map(bucket, func(vertex uint64, _ int) uint64 { return g.Degree(vertex) }))
	ties := lo.Filter(bucket, func(vertex uint64, _ int) bool { return g.Degree(vertex) == maxDegree })
	return ties[random.Intn(len(ties))]
}

// colored removes the vertex and bumps the saturation of its uncolored
// neighbors that have not seen the color yet; only those neighbors are
// touched.
func (state *saturationState) colored(g *graph.Graph, vertex, color uint64) {
	delete(state.buckets[state.saturation[vertex]], vertex)
	delete(state.saturation, vertex)
	delete(state.neighborColors, vertex)

	for _, neighbor := range g.Neighbors(vertex) {
		seen, uncolored := state.neighborColors[neighbor]
		if !uncolored || seen[color] {
			continue
		}
		seen[color] = true
		degree := state.saturation[neighbor]
		delete(state.buckets[degree], neighbor)
		state.buckets[degree+1][neighbor] = true
		state.saturation[neighbor] = degree + 1
		if int(degree+1) > state.highest {
			state.highest = int(degree + 1)
		}
	}
}

func dsaturColor(g *graph.Graph, seed int64) Coloring {
	vertices := g.Vertices()
	coloring := newColoring(len(vertices))
	state := newSaturationState(vertices)
	random := rand.New(rand.NewSource(seed))

	for range vertices {
		vertex := state.selectNext(g, random)
		color := lowestFree(g, coloring, vertex)
		coloring.assign(vertex, color)
		state.colored(g, vertex, color)
	}
	coloring.normalize()
	return coloring
}
