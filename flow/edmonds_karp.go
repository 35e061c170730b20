package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gale/core"
)

// EdmondsKarp computes a maximum flow from source to sink using the
// Edmonds-Karp variant of Ford-Fulkerson: breadth-first search guarantees
// shortest-path-first augmentation, and the bottleneck capacity is pushed
// along each augmenting path.
//
// Precondition: the graph must be simple. Self-loops or parallel edges
// fail with ErrNonSimpleGraph before any computation (for undirected
// graphs the parallel check ignores orientation; for directed graphs
// antiparallel edges are fine).
//
// The graph may be directed or undirected. Returns a (Flow, Cut) pair of
// equal value.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
// ErrNonSimpleGraph, EdgeError.
//
// Complexity: O(V * E^2). Memory: O(V + E).
func EdmondsKarp[V comparable](g *core.Graph[V], source, sink V, opts FlowOptions) (*Flow[V], *Cut[V], error) {
	opts.normalize()
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if err := requireSimple(g); err != nil {
		return nil, nil, err
	}
	nw, err := newNetwork(g, source, sink, opts)
	if err != nil {
		return nil, nil, err
	}

	n := len(nw.verts)
	parentArc := make([]int, n)
	queue := make([]int, 0, n)

	var total float64
	for {
		// BFS for the shortest augmenting path; parentArc records the arc
		// used to reach each vertex.
		for i := range parentArc {
			parentArc[i] = -1
		}
		parentArc[nw.s] = -2
		queue = queue[:0]
		queue = append(queue, nw.s)
		found := false
		for qi := 0; qi < len(queue) && !found; qi++ {
			u := queue[qi]
			for _, ai := range nw.adj[u] {
				a := nw.arcs[ai]
				if a.resid <= nw.eps || parentArc[a.to] != -1 {
					continue
				}
				parentArc[a.to] = ai
				if a.to == nw.t {
					found = true
					break
				}
				queue = append(queue, a.to)
			}
		}
		if !found {
			break
		}

		// Walk back to the source collecting the bottleneck.
		bottle := math.Inf(1)
		for v := nw.t; v != nw.s; {
			ai := parentArc[v]
			if nw.arcs[ai].resid < bottle {
				bottle = nw.arcs[ai].resid
			}
			v = nw.arcs[ai^1].to
		}

		// Augment along the path.
		for v := nw.t; v != nw.s; {
			ai := parentArc[v]
			nw.push(ai, bottle)
			v = nw.arcs[ai^1].to
		}
		total += bottle
		if opts.Verbose {
			fmt.Printf("EdmondsKarp: augmented %g, total %g\n", bottle, total)
		}
	}

	fl, cut := nw.result(total)

	return fl, cut, nil
}

// requireSimple rejects self-loops and parallel edges.
// Complexity: O(E).
func requireSimple[V comparable](g *core.Graph[V]) error {
	type pair struct{ a, b any }
	directed := g.Directed()
	seen := make(map[pair]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			return ErrNonSimpleGraph
		}
		key := pair{a: e.From, b: e.To}
		if !directed {
			// Normalize orientation so A-B and B-A collide.
			if _, dup := seen[pair{a: e.To, b: e.From}]; dup {
				return ErrNonSimpleGraph
			}
		}
		if _, dup := seen[key]; dup {
			return ErrNonSimpleGraph
		}
		seen[key] = struct{}{}
	}

	return nil
}
