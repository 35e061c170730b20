// File: network.go
// Role: Indexed residual network shared by all max-flow algorithms, plus
// result extraction (per-edge flows, min-cut partition).
//
// Representation:
//   - Vertices are indexed by graph insertion order.
//   - Arcs are stored in pairs; arcs[i^1] is the reverse of arcs[i].
//   - A directed edge of capacity w becomes (forward w, reverse 0).
//   - An undirected edge of capacity w becomes (forward w, reverse w).
//   - Self-loops carry no s-t flow and produce no arcs.

package flow

import (
	"github.com/katalvlaran/gale/core"
)

type arc struct {
	to      int     // head vertex index
	resid   float64 // remaining capacity
	edgeID  int64   // originating edge ID
	forward bool    // follows the edge's stored (From, To) orientation
}

type network[V comparable] struct {
	g     *core.Graph[V]
	verts []V
	pos   map[V]int
	arcs  []arc
	adj   [][]int // arc indices per tail vertex
	s, t  int
	eps   float64
}

// newNetwork validates the common preconditions and builds the residual
// network. Edge capacities below -eps fail with EdgeError; capacities
// within [0, eps] are treated as zero and produce no arcs.
// Complexity: O(V + E).
func newNetwork[V comparable](g *core.Graph[V], source, sink V, opts FlowOptions) (*network[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	verts := g.Vertices()
	nw := &network[V]{
		g:     g,
		verts: verts,
		pos:   make(map[V]int, len(verts)),
		adj:   make([][]int, len(verts)),
		eps:   opts.Epsilon,
	}
	for i, v := range verts {
		nw.pos[v] = i
	}
	nw.s = nw.pos[source]
	nw.t = nw.pos[sink]

	directed := g.Directed()
	for _, e := range g.Edges() {
		if e.Weight < -opts.Epsilon {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
		}
		if e.From == e.To || e.Weight <= opts.Epsilon {
			continue
		}
		u, w := nw.pos[e.From], nw.pos[e.To]
		reverseCap := 0.0
		if !directed {
			reverseCap = e.Weight
		}
		fwd := len(nw.arcs)
		nw.arcs = append(nw.arcs,
			arc{to: w, resid: e.Weight, edgeID: e.ID, forward: true},
			arc{to: u, resid: reverseCap, edgeID: e.ID, forward: false},
		)
		nw.adj[u] = append(nw.adj[u], fwd)
		nw.adj[w] = append(nw.adj[w], fwd^1)
	}

	return nw, nil
}

// push moves f units along arc i and reclaims them on its pair.
func (nw *network[V]) push(i int, f float64) {
	nw.arcs[i].resid -= f
	nw.arcs[i^1].resid += f
}

// sourceReachable marks every vertex reachable from the source through
// arcs with positive residual capacity. After a maximum flow this is
// exactly the source side of a minimum cut.
// Complexity: O(V + E).
func (nw *network[V]) sourceReachable() []bool {
	seen := make([]bool, len(nw.verts))
	seen[nw.s] = true
	queue := []int{nw.s}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, ai := range nw.adj[u] {
			a := nw.arcs[ai]
			if a.resid > nw.eps && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return seen
}

// result assembles the (Flow, Cut) pair after a maximum flow has been
// computed. The cut weight is recomputed as the crossing-capacity sum over
// the original edges, so the duality property is checkable rather than
// asserted.
// Complexity: O(V + E).
func (nw *network[V]) result(value float64) (*Flow[V], *Cut[V]) {
	fl := &Flow[V]{
		Value:    value,
		Source:   nw.verts[nw.s],
		Sink:     nw.verts[nw.t],
		EdgeFlow: make(map[int64]float64, nw.g.EdgeCount()),
	}
	for _, e := range nw.g.Edges() {
		fl.EdgeFlow[e.ID] = 0
	}
	directed := nw.g.Directed()
	for i := 0; i < len(nw.arcs); i += 2 {
		fwd, rev := nw.arcs[i], nw.arcs[i^1]
		w, _ := nw.g.Weight(fwd.edgeID)
		var f float64
		if directed {
			// Reverse residual equals the amount pushed forward.
			f = w - fwd.resid
		} else {
			// Both arcs started at w; net flow is half their divergence.
			f = (rev.resid - fwd.resid) / 2
		}
		if f > -nw.eps && f < nw.eps {
			f = 0
		}
		fl.EdgeFlow[fwd.edgeID] += f
	}

	seen := nw.sourceReachable()
	partition := make([]V, 0)
	for i, ok := range seen {
		if ok {
			partition = append(partition, nw.verts[i])
		}
	}

	var weight float64
	inS := func(v V) bool { return seen[nw.pos[v]] }
	for _, e := range nw.g.Edges() {
		if e.From == e.To {
			continue
		}
		switch {
		case directed && inS(e.From) && !inS(e.To):
			weight += e.Weight
		case !directed && inS(e.From) != inS(e.To):
			weight += e.Weight
		}
	}

	return fl, NewCut(weight, partition)
}
