package connectivity

import "github.com/katalvlaran/gale/core"

// WeaklyConnected computes weakly connected components of a directed graph,
// or plain connected components of an undirected one. Edge direction is
// ignored; the sweep is breadth-first from each unvisited vertex in
// insertion order.
//
// Returns whether the graph forms at most one component (an empty graph is
// considered connected) and the ordered component sequence.
//
// Complexity: O(V + E).
func WeaklyConnected[V comparable](g *core.Graph[V]) (bool, [][]V, error) {
	if g == nil {
		return false, nil, ErrNilGraph
	}

	ix := newIndex(g, true, false)
	n := len(ix.verts)
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}

	count := 0
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if label[start] >= 0 {
			continue
		}
		// BFS sweep collecting one component.
		queue = queue[:0]
		queue = append(queue, start)
		label[start] = count
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, w := range ix.succ[u] {
				if label[w] < 0 {
					label[w] = count
					queue = append(queue, w)
				}
			}
		}
		count++
	}

	return count <= 1, ix.components(label, count), nil
}
