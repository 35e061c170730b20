package connectivity

import "github.com/katalvlaran/gale/core"

// StronglyConnectedGabow computes strongly connected components using the
// Cheriyan-Mehlhorn/Gabow path-based algorithm: a single depth-first pass
// maintaining two auxiliary stacks - the DFS path stack and a candidate
// root (boundary) stack - with no explicit low-link bookkeeping.
//
// Returns whether the graph is strongly connected (at most one component)
// and the ordered component sequence.
//
// Errors: ErrNilGraph, ErrGraphNotDirected.
// Complexity: O(V + E).
func StronglyConnectedGabow[V comparable](g *core.Graph[V]) (bool, [][]V, error) {
	if g == nil {
		return false, nil, ErrNilGraph
	}
	if !g.Directed() {
		return false, nil, ErrGraphNotDirected
	}

	ix := newIndex(g, false, false)
	n := len(ix.verts)

	pre := make([]int, n) // preorder number, -1 = unvisited
	label := make([]int, n)
	for i := range pre {
		pre[i] = -1
		label[i] = -1
	}

	var (
		counter int
		count   int
		path    []int // S: vertices on the current DFS path, not yet assigned
		bound   []int // B: candidate component roots (boundary stack)
	)

	// Iterative DFS frames: vertex plus next successor offset.
	type frame struct{ v, next int }
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if pre[root] >= 0 {
			continue
		}
		pre[root] = counter
		counter++
		path = append(path, root)
		bound = append(bound, root)
		stack = append(stack, frame{v: root})

		for len(stack) > 0 {
			fr := &stack[len(stack)-1]
			if fr.next < len(ix.succ[fr.v]) {
				w := ix.succ[fr.v][fr.next]
				fr.next++
				if pre[w] < 0 {
					// Tree edge: descend.
					pre[w] = counter
					counter++
					path = append(path, w)
					bound = append(bound, w)
					stack = append(stack, frame{v: w})
				} else if label[w] < 0 {
					// Back or cross edge into the current path: contract the
					// boundary stack down to w's candidate root.
					for pre[bound[len(bound)-1]] > pre[w] {
						bound = bound[:len(bound)-1]
					}
				}
				continue
			}

			// Post-order: if v is its component's root, pop one SCC.
			v := fr.v
			stack = stack[:len(stack)-1]
			if bound[len(bound)-1] == v {
				bound = bound[:len(bound)-1]
				for {
					u := path[len(path)-1]
					path = path[:len(path)-1]
					label[u] = count
					if u == v {
						break
					}
				}
				count++
			}
		}
	}

	return count <= 1, ix.components(label, count), nil
}
