package cut

import (
	"math"

	"github.com/katalvlaran/gale/core"
	"github.com/katalvlaran/gale/flow"
)

// OddMinCutSetPadbergRao computes the minimum-weight cut whose source
// partition contains an odd number of the designated odd vertices
// (Padberg-Rao, with the Gomory-Hu-tree characterization of Letchford,
// Reinelt and Theis: the optimum is a fundamental cut of the cut tree).
//
// oddVertices is interpreted as a set: duplicates collapse. The set must
// be non-empty with even cardinality, and every member must exist in the
// graph. The graph must be undirected and simple, with strictly positive
// edge weights.
//
// When useTreeCompression is true, a single O(V) subtree-parity pass
// prunes every even fundamental cut before any candidate is materialized;
// when false, each tree edge's partition is examined directly. Both modes
// return identical cuts (ties break toward the earliest tree edge in
// vertex-index order).
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrNonSimpleGraph,
// ErrNonPositiveWeight, ErrOddVertices, ErrVertexNotFound.
//
// Complexity: O(V^4), dominated by the Gomory-Hu construction.
func OddMinCutSetPadbergRao[V comparable](g *core.Graph[V], oddVertices []V, useTreeCompression bool) (*flow.Cut[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if err := validateSimplePositive(g); err != nil {
		return nil, err
	}

	odd := make(map[V]struct{}, len(oddVertices))
	for _, v := range oddVertices {
		if !g.HasVertex(v) {
			return nil, ErrVertexNotFound
		}
		odd[v] = struct{}{}
	}
	if len(odd) == 0 || len(odd)%2 != 0 {
		return nil, ErrOddVertices
	}

	ght, err := GomoryHuGusfield(g)
	if err != nil {
		return nil, err
	}
	t := &ght.tree
	n := len(t.verts)

	bestWeight := math.Inf(1)
	bestChild := -1

	if useTreeCompression {
		// One bottom-up parity pass; only odd fundamental cuts survive.
		parity := subtreeOddParity(t, odd)
		for i := 1; i < n; i++ {
			if parity[i] == 1 && t.weight[i] < bestWeight {
				bestWeight = t.weight[i]
				bestChild = i
			}
		}
	} else {
		// Materialize each fundamental cut and count its odd members.
		for i := 1; i < n; i++ {
			if t.weight[i] >= bestWeight {
				continue
			}
			mark := t.subtree(i)
			cnt := 0
			for j, in := range mark {
				if !in {
					continue
				}
				if _, ok := odd[t.verts[j]]; ok {
					cnt++
				}
			}
			if cnt%2 == 1 {
				bestWeight = t.weight[i]
				bestChild = i
			}
		}
	}

	if bestChild < 0 {
		// Cannot happen for a valid even-cardinality odd set on a cut
		// tree, but guard against an empty candidate list.
		return nil, ErrOddVertices
	}

	mark := t.subtree(bestChild)
	side := make([]V, 0, n)
	for i, in := range mark {
		if in {
			side = append(side, t.verts[i])
		}
	}

	return flow.NewCut(bestWeight, side), nil
}

// subtreeOddParity returns, per vertex index, the parity (0/1) of the
// number of odd vertices inside its subtree.
// Complexity: O(V).
func subtreeOddParity[V comparable](t *flowTree[V], odd map[V]struct{}) []int {
	n := len(t.verts)
	parity := make([]int, n)
	for i, v := range t.verts {
		if _, ok := odd[v]; ok {
			parity[i] = 1
		}
	}
	// Children accumulate into parents in decreasing depth order; bucketing
	// by depth keeps the pass linear.
	maxDepth := 0
	for _, d := range t.depth {
		if d > maxDepth {
			maxDepth = d
		}
	}
	buckets := make([][]int, maxDepth+1)
	for i := 0; i < n; i++ {
		buckets[t.depth[i]] = append(buckets[t.depth[i]], i)
	}
	for d := maxDepth; d > 0; d-- {
		for _, i := range buckets[d] {
			parity[t.parent[i]] = (parity[t.parent[i]] + parity[i]) % 2
		}
	}

	return parity
}

// validateSimplePositive rejects loops, parallel edges, and non-positive
// weights in one scan.
func validateSimplePositive[V comparable](g *core.Graph[V]) error {
	type pair struct{ a, b any }
	seen := make(map[pair]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.Weight <= 0 {
			return ErrNonPositiveWeight
		}
		if e.From == e.To {
			return ErrNonSimpleGraph
		}
		if _, dup := seen[pair{a: e.From, b: e.To}]; dup {
			return ErrNonSimpleGraph
		}
		if _, dup := seen[pair{a: e.To, b: e.From}]; dup {
			return ErrNonSimpleGraph
		}
		seen[pair{a: e.From, b: e.To}] = struct{}{}
	}

	return nil
}
