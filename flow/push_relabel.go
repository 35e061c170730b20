package flow

import (
	"fmt"

	"github.com/katalvlaran/gale/core"
)

// PushRelabel computes a maximum flow from source to sink using the
// Goldberg-Tarjan preflow-push algorithm with FIFO vertex selection.
//
// The algorithm maintains a height label and an excess per vertex. Excess
// is repeatedly pushed along admissible arcs (height difference exactly 1);
// a vertex with excess but no admissible arc is relabelled to one above its
// lowest residual neighbor. It terminates when no vertex other than source
// and sink holds positive excess.
//
// PushRelabel is the canonical algorithm behind the convenience entry
// points: MaxSTFlow returns its flow and cut.MinSTCut returns its cut.
//
// The graph may be directed or undirected. Returns a (Flow, Cut) pair of
// equal value.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
// EdgeError.
//
// Complexity: O(V^3). Memory: O(V + E).
func PushRelabel[V comparable](g *core.Graph[V], source, sink V, opts FlowOptions) (*Flow[V], *Cut[V], error) {
	opts.normalize()
	nw, err := newNetwork(g, source, sink, opts)
	if err != nil {
		return nil, nil, err
	}

	n := len(nw.verts)
	height := make([]int, n)
	excess := make([]float64, n)
	cur := make([]int, n) // current-arc pointer per vertex
	inQueue := make([]bool, n)
	queue := make([]int, 0, n)

	enqueue := func(u int) {
		if !inQueue[u] && u != nw.s && u != nw.t && excess[u] > nw.eps {
			inQueue[u] = true
			queue = append(queue, u)
		}
	}

	// Initialize preflow: lift the source and saturate its outgoing arcs.
	height[nw.s] = n
	for _, ai := range nw.adj[nw.s] {
		a := nw.arcs[ai]
		if a.resid > nw.eps {
			f := a.resid
			nw.push(ai, f)
			excess[a.to] += f
			excess[nw.s] -= f
			enqueue(a.to)
			if opts.Verbose {
				fmt.Printf("PushRelabel: saturate arc to %v with %g\n", nw.verts[a.to], f)
			}
		}
	}

	// FIFO discharge loop.
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for excess[u] > nw.eps {
			if cur[u] == len(nw.adj[u]) {
				// No admissible arc left: relabel to one above the lowest
				// residual neighbor.
				minH := -1
				for _, ai := range nw.adj[u] {
					a := nw.arcs[ai]
					if a.resid > nw.eps && (minH < 0 || height[a.to] < minH) {
						minH = height[a.to]
					}
				}
				if minH < 0 {
					break // isolated excess; cannot happen on a valid network
				}
				height[u] = minH + 1
				cur[u] = 0
				continue
			}

			ai := nw.adj[u][cur[u]]
			a := nw.arcs[ai]
			if a.resid > nw.eps && height[u] == height[a.to]+1 {
				f := excess[u]
				if a.resid < f {
					f = a.resid
				}
				nw.push(ai, f)
				excess[u] -= f
				excess[a.to] += f
				enqueue(a.to)
				if opts.Verbose {
					fmt.Printf("PushRelabel: push %g from %v to %v\n", f, nw.verts[u], nw.verts[a.to])
				}
			} else {
				cur[u]++
			}
		}
	}

	fl, cut := nw.result(excess[nw.t])

	return fl, cut, nil
}

// MaxSTFlow computes the maximum s-t flow using PushRelabel and returns
// only the flow. Same preconditions and complexity as PushRelabel.
func MaxSTFlow[V comparable](g *core.Graph[V], source, sink V, opts FlowOptions) (*Flow[V], error) {
	fl, _, err := PushRelabel(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	return fl, nil
}
