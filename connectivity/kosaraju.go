package connectivity

import "github.com/katalvlaran/gale/core"

// StronglyConnectedKosaraju computes strongly connected components with
// Kosaraju's two-pass algorithm: a DFS recording vertex finish order,
// followed by a DFS over the transposed graph in reverse finish order.
// Every tree of the second pass is one component.
//
// Returns whether the graph is strongly connected (at most one component)
// and the ordered component sequence. The partition is always identical
// (as sets) to StronglyConnectedGabow's.
//
// Errors: ErrNilGraph, ErrGraphNotDirected.
// Complexity: O(V + E).
func StronglyConnectedKosaraju[V comparable](g *core.Graph[V]) (bool, [][]V, error) {
	if g == nil {
		return false, nil, ErrNilGraph
	}
	if !g.Directed() {
		return false, nil, ErrGraphNotDirected
	}

	ix := newIndex(g, false, true)
	n := len(ix.verts)

	// Pass 1: iterative DFS computing finish order.
	visited := make([]bool, n)
	finish := make([]int, 0, n)
	type frame struct{ v, next int }
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack = append(stack, frame{v: root})
		for len(stack) > 0 {
			fr := &stack[len(stack)-1]
			if fr.next < len(ix.succ[fr.v]) {
				w := ix.succ[fr.v][fr.next]
				fr.next++
				if !visited[w] {
					visited[w] = true
					stack = append(stack, frame{v: w})
				}
				continue
			}
			finish = append(finish, fr.v)
			stack = stack[:len(stack)-1]
		}
	}

	// Pass 2: DFS over the transpose in reverse finish order.
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	count := 0
	work := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		v := finish[i]
		if label[v] >= 0 {
			continue
		}
		work = work[:0]
		work = append(work, v)
		label[v] = count
		for len(work) > 0 {
			u := work[len(work)-1]
			work = work[:len(work)-1]
			for _, w := range ix.pred[u] {
				if label[w] < 0 {
					label[w] = count
					work = append(work, w)
				}
			}
		}
		count++
	}

	return count <= 1, ix.components(label, count), nil
}
