package metrics

import (
	"math"

	"github.com/katalvlaran/gale/core"
)

// Measure computes every distance metric from one Floyd-Warshall pass:
// diameter, radius, center, periphery, pseudo-periphery, and the full
// vertex eccentricity map. Bundling them amortizes the O(V^3) all-pairs
// cost across all six results.
//
// Directed graphs are measured with directed distances; an undirected edge
// contributes both orientations. Parallel edges collapse to the lightest.
//
// Errors: ErrNilGraph.
//
// Complexity: O(V^3) time, O(V^2) space. Determinism: fixed k->i->j
// relaxation order, insertion-order vertex sets.
func Measure[V comparable](g *core.Graph[V]) (*Measurement[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	verts := g.Vertices()
	n := len(verts)
	m := &Measurement[V]{Eccentricity: make(map[V]float64, n)}
	if n == 0 {
		return m, nil
	}

	ecc := eccentricities(g, verts)

	m.Diameter = math.Inf(-1)
	m.Radius = math.Inf(1)
	for i, v := range verts {
		m.Eccentricity[v] = ecc[i]
		if ecc[i] > m.Diameter {
			m.Diameter = ecc[i]
		}
		if ecc[i] < m.Radius {
			m.Radius = ecc[i]
		}
	}
	for i, v := range verts {
		if ecc[i] == m.Radius {
			m.Center = append(m.Center, v)
		}
		if ecc[i] == m.Diameter {
			m.Periphery = append(m.Periphery, v)
		}
	}

	// Pseudo-periphery: eccentricity not exceeded by any neighbor.
	pos := make(map[V]int, n)
	for i, v := range verts {
		pos[v] = i
	}
	for i, v := range verts {
		local := true
		incident, _ := g.Neighbors(v) // v came from Vertices, cannot miss
		for _, e := range incident {
			if ecc[pos[e.To]] > ecc[i] {
				local = false
				break
			}
		}
		if local {
			m.PseudoPeriphery = append(m.PseudoPeriphery, v)
		}
	}

	return m, nil
}

// Diameter returns the maximum vertex eccentricity: 0 for an empty graph,
// +Inf when some ordered pair is unreachable.
//
// Errors: ErrNilGraph. Complexity: O(V^3).
func Diameter[V comparable](g *core.Graph[V]) (float64, error) {
	m, err := Measure(g)
	if err != nil {
		return 0, err
	}

	return m.Diameter, nil
}

// Radius returns the minimum vertex eccentricity: 0 for an empty graph,
// +Inf when some ordered pair is unreachable.
//
// Errors: ErrNilGraph. Complexity: O(V^3).
func Radius[V comparable](g *core.Graph[V]) (float64, error) {
	m, err := Measure(g)
	if err != nil {
		return 0, err
	}

	return m.Radius, nil
}

// eccentricities runs Floyd-Warshall over a flat row-major distance buffer
// and reduces each row to its maximum. +Inf off-diagonal means "no path";
// the diagonal stays 0.
func eccentricities[V comparable](g *core.Graph[V], verts []V) []float64 {
	n := len(verts)
	pos := make(map[V]int, n)
	for i, v := range verts {
		pos[v] = i
	}

	dist := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				dist[i*n+j] = math.Inf(1)
			}
		}
	}
	directed := g.Directed()
	for _, e := range g.Edges() {
		u, w := pos[e.From], pos[e.To]
		if u == w {
			continue // self-loops never shorten a path
		}
		if e.Weight < dist[u*n+w] {
			dist[u*n+w] = e.Weight
		}
		if !directed && e.Weight < dist[w*n+u] {
			dist[w*n+u] = e.Weight
		}
	}

	// Fixed k->i->j order; +Inf rows short-circuit the inner loop.
	var (
		k            int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = dist[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
				}
			}
		}
	}

	ecc := make([]float64, n)
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = 0; j < n; j++ {
			if dist[baseI+j] > ecc[i] {
				ecc[i] = dist[baseI+j]
			}
		}
	}

	return ecc
}
