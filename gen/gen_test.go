package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gale/connectivity"
	"github.com/katalvlaran/gale/core"
	"github.com/katalvlaran/gale/gen"
	"github.com/katalvlaran/gale/metrics"
)

// GenSuite exercises topology shape, determinism, and validation.
type GenSuite struct {
	suite.Suite
}

// TestPathShape verifies vertex/edge counts and endpoint degrees.
func (s *GenSuite) TestPathShape() {
	g, err := gen.Path(5, gen.IntID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, g.VertexCount())
	require.Equal(s.T(), 4, g.EdgeCount())

	_, _, d, err := g.Degree(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, d)
	_, _, d, err = g.Degree(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, d)
}

// TestCycleGirth verifies C_n has girth n.
func (s *GenSuite) TestCycleGirth() {
	g, err := gen.Cycle(6, gen.DecimalID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, g.EdgeCount())

	girth, err := metrics.Girth(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6.0, girth)
}

// TestCompleteTriangles verifies K_n edge count and triangle count.
func (s *GenSuite) TestCompleteTriangles() {
	g, err := gen.Complete(5, gen.IntID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, g.EdgeCount())

	tri, err := metrics.CountTriangles(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), tri) // C(5,3)
}

// TestStarShape verifies the hub degree and leaf degrees.
func (s *GenSuite) TestStarShape() {
	g, err := gen.Star(6, gen.IntID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, g.EdgeCount())

	_, _, hub, err := g.Degree(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, hub)
	_, _, leaf, err := g.Degree(3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, leaf)
}

// TestWheelShape verifies W_n: hub degree n-1, rim degree 3, and the rim
// triangles with the hub.
func (s *GenSuite) TestWheelShape() {
	g, err := gen.Wheel(6, gen.IntID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, g.EdgeCount()) // 5 spokes + 5 rim

	_, _, hub, err := g.Degree(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, hub)
	_, _, rim, err := g.Degree(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, rim)

	tri, err := metrics.CountTriangles(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), tri)
}

// TestGridShape verifies lattice counts and connectivity.
func (s *GenSuite) TestGridShape() {
	g, err := gen.Grid(3, 4, gen.IntID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12, g.VertexCount())
	require.Equal(s.T(), 17, g.EdgeCount()) // 3*3 horizontal + 2*4 vertical

	ok, _, err := connectivity.IsConnected(g)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

// TestDirectedOption verifies graph options pass through to the core.
func (s *GenSuite) TestDirectedOption() {
	g, err := gen.Cycle(3, gen.IntID, 1, core.WithDirected(true))
	require.NoError(s.T(), err)
	require.True(s.T(), g.Directed())

	girth, err := metrics.Girth(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, girth)
}

// TestDeterminism verifies two invocations enumerate identically.
func (s *GenSuite) TestDeterminism() {
	a, err := gen.Grid(2, 3, gen.DecimalID, 2)
	require.NoError(s.T(), err)
	b, err := gen.Grid(2, 3, gen.DecimalID, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Vertices(), b.Vertices())
	require.Equal(s.T(), a.Edges(), b.Edges())
}

// TestValidation verifies the sentinel surface.
func (s *GenSuite) TestValidation() {
	_, err := gen.Path[int](5, nil, 1)
	require.ErrorIs(s.T(), err, gen.ErrNilIDFunc)
	_, err = gen.Path(1, gen.IntID, 1)
	require.ErrorIs(s.T(), err, gen.ErrTooFewVertices)
	_, err = gen.Cycle(2, gen.IntID, 1)
	require.ErrorIs(s.T(), err, gen.ErrTooFewVertices)
	_, err = gen.Wheel(3, gen.IntID, 1)
	require.ErrorIs(s.T(), err, gen.ErrTooFewVertices)
	_, err = gen.Grid(0, 3, gen.IntID, 1)
	require.ErrorIs(s.T(), err, gen.ErrBadDimensions)
}

func TestGenSuite(t *testing.T) {
	suite.Run(t, new(GenSuite))
}
