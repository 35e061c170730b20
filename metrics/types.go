package metrics

import "errors"

// Sentinel errors for metric preconditions.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("metrics: graph is nil")

	// ErrDirectedGraph is returned by CountTriangles for directed graphs.
	ErrDirectedGraph = errors.New("metrics: graph must be undirected")
)

// Measurement bundles every metric derivable from one all-pairs
// shortest-paths pass.
//
// Center holds the vertices of minimum eccentricity, Periphery the
// vertices of maximum eccentricity, and PseudoPeriphery the vertices whose
// eccentricity is not exceeded by any neighbor. All three slices follow
// vertex insertion order. Eccentricity maps every vertex to its
// eccentricity (+Inf when some vertex is unreachable from it).
type Measurement[V comparable] struct {
	Diameter        float64
	Radius          float64
	Center          []V
	Periphery       []V
	PseudoPeriphery []V
	Eccentricity    map[V]float64
}
