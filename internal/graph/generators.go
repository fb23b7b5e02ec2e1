package graph

import "math/rand"

// Cycle builds the cycle graph C_n on vertices 0..n-1. C_2 degenerates
// to a single edge, as a simple graph cannot carry the parallel edge.
func Cycle(n uint64) *Graph {
	cycle := New()
	if n == 0 {
		return cycle
	}
	if n == 1 {
		cycle.AddVertex(0)
		return cycle
	}
	if n == 2 {
		cycle.AddEdge(0, 1)
		return cycle
	}
	for i := uint64(0); i < n; i++ {
		cycle.AddEdge(i, (i+1)%n)
	}
	return cycle
}

// Complete builds the complete graph K_n on vertices 0..n-1.
func Complete(n uint64) *Graph {
	complete := New()
	for i := uint64(0); i < n; i++ {
		complete.AddVertex(i)
	}
	for i := uint64(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			complete.AddEdge(i, j)
		}
	}
	return complete
}

// CompleteBipartite builds K_{a,b}: vertices 0..a-1 on one side and
// a..a+b-1 on the other, with every cross edge present.
func CompleteBipartite(a, b uint64) *Graph {
	bipartite := New()
	for i := uint64(0); i < a+b; i++ {
		bipartite.AddVertex(i)
	}
	for i := uint64(0); i < a; i++ {
		for j := a; j < a+b; j++ {
			bipartite.AddEdge(i, j)
		}
	}
	return bipartite
}

// Random builds a simple graph on vertices 0..n-1 with m distinct edges
// sampled without replacement. Identical seeds yield identical graphs. If
// m exceeds n*(n-1)/2 the edge count is capped at the complete graph.
func Random(n, m uint64, seed int64) *Graph {
	if m > n*(n-1)/2 {
		m = n * (n - 1) / 2
	}

	random := rand.New(rand.NewSource(seed))
	result := New()
	for i := uint64(0); i < n; i++ {
		result.AddVertex(i)
	}

	var edges uint64 = 0
	for edges < m {
		u := uint64(random.Intn(int(n)))
		v := uint64(random.Intn(int(n)))
		if u == v || result.HasEdge(u, v) {
			continue
		}
		result.AddEdge(u, v)
		edges++
	}
	return result
}
