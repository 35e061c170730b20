package gen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gale/core"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrNilIDFunc is returned when no identifier function is supplied.
	ErrNilIDFunc = errors.New("gen: id function is nil")

	// ErrTooFewVertices is returned when n is below the topology's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrBadDimensions is returned by Grid for non-positive rows or cols.
	ErrBadDimensions = errors.New("gen: rows and cols must be positive")
)

// IDFunc maps a zero-based vertex index to its identifier. It must be
// pure: the same index always yields the same identifier.
type IDFunc[V comparable] func(idx int) V

// IntID is the identity IDFunc for integer-keyed graphs.
func IntID(idx int) int { return idx }

// DecimalID renders the index as its decimal string, 0 -> "0".
func DecimalID(idx int) string { return strconv.Itoa(idx) }

// Path builds the n-vertex path P_n: edges i—i+1 for i in [0, n-2].
// Requires n >= 2.
func Path[V comparable](n int, id IDFunc[V], weight float64, opts ...core.GraphOption) (*core.Graph[V], error) {
	const min = 2
	g, err := skeleton(n, min, id, opts)
	if err != nil {
		return nil, fmt.Errorf("gen.Path: %w", err)
	}
	for i := 0; i+1 < n; i++ {
		if _, err := g.AddEdge(id(i), id(i+1), weight); err != nil {
			return nil, fmt.Errorf("gen.Path: %w", err)
		}
	}

	return g, nil
}

// Cycle builds the n-vertex cycle C_n: edges i—(i+1) mod n. Requires
// n >= 3.
func Cycle[V comparable](n int, id IDFunc[V], weight float64, opts ...core.GraphOption) (*core.Graph[V], error) {
	const min = 3
	g, err := skeleton(n, min, id, opts)
	if err != nil {
		return nil, fmt.Errorf("gen.Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(id(i), id((i+1)%n), weight); err != nil {
			return nil, fmt.Errorf("gen.Cycle: %w", err)
		}
	}

	return g, nil
}

// Complete builds K_n: one edge per unordered pair, emitted in
// lexicographic (i, j) order. Requires n >= 1.
func Complete[V comparable](n int, id IDFunc[V], weight float64, opts ...core.GraphOption) (*core.Graph[V], error) {
	const min = 1
	g, err := skeleton(n, min, id, opts)
	if err != nil {
		return nil, fmt.Errorf("gen.Complete: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(id(i), id(j), weight); err != nil {
				return nil, fmt.Errorf("gen.Complete: %w", err)
			}
		}
	}

	return g, nil
}

// Star builds the n-vertex star S_n: index 0 is the hub, every other
// index a leaf. Requires n >= 2.
func Star[V comparable](n int, id IDFunc[V], weight float64, opts ...core.GraphOption) (*core.Graph[V], error) {
	const min = 2
	g, err := skeleton(n, min, id, opts)
	if err != nil {
		return nil, fmt.Errorf("gen.Star: %w", err)
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(id(0), id(i), weight); err != nil {
			return nil, fmt.Errorf("gen.Star: %w", err)
		}
	}

	return g, nil
}

// Wheel builds the n-vertex wheel W_n: index 0 is the hub joined to every
// rim vertex, the rim 1..n-1 forms a cycle. Requires n >= 4.
func Wheel[V comparable](n int, id IDFunc[V], weight float64, opts ...core.GraphOption) (*core.Graph[V], error) {
	const min = 4
	g, err := skeleton(n, min, id, opts)
	if err != nil {
		return nil, fmt.Errorf("gen.Wheel: %w", err)
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(id(0), id(i), weight); err != nil {
			return nil, fmt.Errorf("gen.Wheel: %w", err)
		}
	}
	for i := 1; i < n; i++ {
		next := i + 1
		if next == n {
			next = 1
		}
		if _, err := g.AddEdge(id(i), id(next), weight); err != nil {
			return nil, fmt.Errorf("gen.Wheel: %w", err)
		}
	}

	return g, nil
}

// Grid builds the rows x cols lattice: vertex index r*cols+c, horizontal
// then vertical edges per cell in row-major order. Requires positive
// dimensions.
func Grid[V comparable](rows, cols int, id IDFunc[V], weight float64, opts ...core.GraphOption) (*core.Graph[V], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("gen.Grid: %dx%d: %w", rows, cols, ErrBadDimensions)
	}
	g, err := skeleton(rows*cols, 1, id, opts)
	if err != nil {
		return nil, fmt.Errorf("gen.Grid: %w", err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := r*cols + c
			if c+1 < cols {
				if _, err := g.AddEdge(id(at), id(at+1), weight); err != nil {
					return nil, fmt.Errorf("gen.Grid: %w", err)
				}
			}
			if r+1 < rows {
				if _, err := g.AddEdge(id(at), id(at+cols), weight); err != nil {
					return nil, fmt.Errorf("gen.Grid: %w", err)
				}
			}
		}
	}

	return g, nil
}

// skeleton validates shared parameters and registers the n vertices in
// ascending index order.
func skeleton[V comparable](n, min int, id IDFunc[V], opts []core.GraphOption) (*core.Graph[V], error) {
	if id == nil {
		return nil, ErrNilIDFunc
	}
	if n < min {
		return nil, fmt.Errorf("n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}
	g := core.NewGraph[V](opts...)
	for i := 0; i < n; i++ {
		g.AddVertex(id(i))
	}

	return g, nil
}
