package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gale/core"
)

// Dinic computes a maximum flow from source to sink using Dinic's
// algorithm: BFS builds a level graph, then DFS with current-arc pointers
// saturates a blocking flow, re-layering after each blocking flow until the
// sink becomes unreachable.
//
// The graph may be directed or undirected; an undirected edge acts as two
// opposing arcs of equal capacity. Returns a (Flow, Cut) pair of equal
// value.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
// EdgeError.
//
// Complexity: O(V^2 * E) in general; O(E * sqrt(V)) on unit-capacity
// networks. Memory: O(V + E).
func Dinic[V comparable](g *core.Graph[V], source, sink V, opts FlowOptions) (*Flow[V], *Cut[V], error) {
	opts.normalize()
	nw, err := newNetwork(g, source, sink, opts)
	if err != nil {
		return nil, nil, err
	}

	n := len(nw.verts)
	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)

	var total float64
	for {
		// BFS: compute levels over positive-residual arcs.
		for i := range level {
			level[i] = -1
		}
		level[nw.s] = 0
		queue = queue[:0]
		queue = append(queue, nw.s)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, ai := range nw.adj[u] {
				a := nw.arcs[ai]
				if a.resid > nw.eps && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[nw.t] < 0 {
			break // sink unreachable: flow is maximum
		}

		// Blocking flow: repeated DFS pushes with current-arc pointers.
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dinicPush(nw, level, iter, nw.s, math.Inf(1))
			if pushed <= nw.eps {
				break
			}
			total += pushed
			if opts.Verbose {
				fmt.Printf("Dinic: pushed %g, total %g\n", pushed, total)
			}
		}
	}

	fl, cut := nw.result(total)

	return fl, cut, nil
}

// dinicPush advances depth-first along level-increasing arcs, pushing up to
// `available` units from u toward the sink and returning the amount sent.
// The current-arc pointer iter[u] guarantees each arc is abandoned at most
// once per blocking-flow phase.
func dinicPush[V comparable](nw *network[V], level, iter []int, u int, available float64) float64 {
	if u == nw.t {
		return available
	}
	for ; iter[u] < len(nw.adj[u]); iter[u]++ {
		ai := nw.adj[u][iter[u]]
		a := nw.arcs[ai]
		if a.resid <= nw.eps || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.resid < send {
			send = a.resid
		}
		if pushed := dinicPush(nw, level, iter, a.to, send); pushed > nw.eps {
			nw.push(ai, pushed)

			return pushed
		}
	}

	return 0
}
