package solver

import (
	"coursegraph/internal/graph"
	"coursegraph/internal/model"
)

// Conflicts reports whether two candidates cannot coexist in a solution:
// same section, same teacher or room in the same period, or same period
// for sections sharing a curriculum. The predicate is symmetric and O(1);
// it is the only place conflict semantics live.
func (candidates *CandidateSet) Conflicts(a, b Candidate) bool {
	if a.Section == b.Section {
		return true
	}
	if a.Period != b.Period {
		return false
	}
	if a.Teacher == b.Teacher || a.Room == b.Room {
		return true
	}
	return candidates.clash[a.Section][b.Section]
}

// SectionClashGraph returns the graph whose vertices are section ids and
// whose edges join sections sharing a curriculum: sections that can never
// occupy the same period. Coloring it with periods as colors yields a
// period assignment free of curriculum conflicts.
func SectionClashGraph(instance model.Instance) *graph.Graph {
	clash := buildClashMatrix(instance)
	clashGraph := graph.New()
	for _, section := range instance.Sections {
		clashGraph.AddVertex(section.Id)
	}
	for i := 0; i < len(clash)-1; i++ {
		for j := i + 1; j < len(clash); j++ {
			if clash[i][j] {
				clashGraph.AddEdge(uint64(i), uint64(j))
			}
		}
	}
	return clashGraph
}

// ConflictGraph materializes the implicit conflict graph over the
// candidate arena: vertex i is candidate At(i), edges follow Conflicts.
// Intended for standalone coloring runs; the solver itself never builds
// it and queries the predicate lazily instead.
func (candidates *CandidateSet) ConflictGraph() *graph.Graph {
	conflictGraph := graph.New()
	total := candidates.Len()
	for i := uint64(0); i < total; i++ {
		conflictGraph.AddVertex(i)
	}
	for i := uint64(0); i < total; i++ {
		for j := i + 1; j < total; j++ {
			if candidates.Conflicts(candidates.flat[i], candidates.flat[j]) {
				conflictGraph.AddEdge(i, j)
			}
		}
	}
	return conflictGraph
}
