package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gale/core"
)

// GraphSuite exercises the Graph model over string identifiers.
type GraphSuite struct {
	suite.Suite
}

// TestAddVertexIdempotent verifies AddVertex is a no-op for duplicates.
func (s *GraphSuite) TestAddVertexIdempotent() {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	g.AddVertex("A")
	require.Equal(s.T(), 1, g.VertexCount())
	require.True(s.T(), g.HasVertex("A"))
	require.False(s.T(), g.HasVertex("B"))
}

// TestAddEdgeAutoRegistersEndpoints verifies endpoints are created on demand.
func (s *GraphSuite) TestAddEdgeAutoRegistersEndpoints() {
	g := core.NewGraph[string](core.WithDirected(true))
	id, err := g.AddEdge("A", "B", 2.5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B"}, g.Vertices())

	e, err := g.EdgeByID(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "A", e.From)
	require.Equal(s.T(), "B", e.To)
	require.Equal(s.T(), 2.5, e.Weight)
}

// TestLoopPolicy verifies self-loop rejection and acceptance.
func (s *GraphSuite) TestLoopPolicy() {
	g := core.NewGraph[string]()
	_, err := g.AddEdge("A", "A", 1)
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)

	loopy := core.NewGraph[string](core.WithLoops())
	_, err = loopy.AddEdge("A", "A", 1)
	require.NoError(s.T(), err)
}

// TestMultiEdgePolicy verifies parallel-edge rejection and acceptance,
// including the undirected reverse orientation.
func (s *GraphSuite) TestMultiEdgePolicy() {
	g := core.NewGraph[string]()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(s.T(), err)
	_, err = g.AddEdge("B", "A", 1)
	require.ErrorIs(s.T(), err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph[string](core.WithMultiEdges())
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(s.T(), err)
	_, err = multi.AddEdge("A", "B", 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), multi.EdgesBetween("A", "B"), 2)
}

// TestNaNWeightRejected verifies ErrBadWeight on NaN.
func (s *GraphSuite) TestNaNWeightRejected() {
	g := core.NewGraph[string]()
	_, err := g.AddEdge("A", "B", math.NaN())
	require.ErrorIs(s.T(), err, core.ErrBadWeight)
}

// TestWeightLookupAndUpdate verifies Weight/SetWeight round-trips.
func (s *GraphSuite) TestWeightLookupAndUpdate() {
	g := core.NewGraph[string]()
	id, _ := g.AddEdge("A", "B", 1)

	w, err := g.Weight(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, w)

	require.NoError(s.T(), g.SetWeight(id, 9))
	w, _ = g.Weight(id)
	require.Equal(s.T(), 9.0, w)

	_, err = g.Weight(999)
	require.ErrorIs(s.T(), err, core.ErrEdgeNotFound)
	require.ErrorIs(s.T(), g.SetWeight(999, 1), core.ErrEdgeNotFound)
}

// TestNeighborsOrientation verifies undirected edges are re-oriented away
// from the query vertex and ordered by ID.
func (s *GraphSuite) TestNeighborsOrientation() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("A", "C", 2)

	nbrs, err := g.Neighbors("A")
	require.NoError(s.T(), err)
	require.Len(s.T(), nbrs, 2)
	require.Equal(s.T(), "A", nbrs[0].From)
	require.Equal(s.T(), "B", nbrs[0].To)
	require.Equal(s.T(), "A", nbrs[1].From)
	require.Equal(s.T(), "C", nbrs[1].To)

	_, err = g.Neighbors("Z")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
}

// TestDirectedNeighbors verifies only outgoing edges are listed.
func (s *GraphSuite) TestDirectedNeighbors() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("C", "A", 1)

	nbrs, err := g.Neighbors("A")
	require.NoError(s.T(), err)
	require.Len(s.T(), nbrs, 1)
	require.Equal(s.T(), "B", nbrs[0].To)
}

// TestDegreeConventions verifies the loop-aware degree policy.
func (s *GraphSuite) TestDegreeConventions() {
	d := core.NewGraph[string](core.WithDirected(true), core.WithLoops())
	_, _ = d.AddEdge("A", "B", 1)
	_, _ = d.AddEdge("A", "A", 1)
	in, out, und, err := d.Degree("A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, in)  // the self-loop
	require.Equal(s.T(), 2, out) // A->B plus the self-loop
	require.Zero(s.T(), und)

	u := core.NewGraph[string](core.WithLoops())
	_, _ = u.AddEdge("A", "B", 1)
	_, _ = u.AddEdge("A", "A", 1)
	_, _, und, err = u.Degree("A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, und) // incident edge + loop counted twice

	_, _, _, err = u.Degree("Z")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
}

// TestRemoveVertexDropsIncidentEdges verifies topology cleanup.
func (s *GraphSuite) TestRemoveVertexDropsIncidentEdges() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	require.NoError(s.T(), g.RemoveVertex("B"))
	require.Zero(s.T(), g.EdgeCount())
	require.Equal(s.T(), []string{"A", "C"}, g.Vertices())
	require.ErrorIs(s.T(), g.RemoveVertex("B"), core.ErrVertexNotFound)
}

// TestRemoveEdge verifies catalog and adjacency cleanup.
func (s *GraphSuite) TestRemoveEdge() {
	g := core.NewGraph[string]()
	id, _ := g.AddEdge("A", "B", 1)
	require.NoError(s.T(), g.RemoveEdge(id))
	require.False(s.T(), g.HasEdge("A", "B"))
	require.ErrorIs(s.T(), g.RemoveEdge(id), core.ErrEdgeNotFound)
}

// TestCloneIndependence verifies deep-copy semantics.
func (s *GraphSuite) TestCloneIndependence() {
	g := core.NewGraph[string]()
	id, _ := g.AddEdge("A", "B", 1)

	c := g.Clone()
	require.NoError(s.T(), c.SetWeight(id, 42))

	w, _ := g.Weight(id)
	require.Equal(s.T(), 1.0, w, "original must be unaffected by clone mutation")

	empty := g.CloneEmpty()
	require.Equal(s.T(), g.Vertices(), empty.Vertices())
	require.Zero(s.T(), empty.EdgeCount())
}

// TestIntVertices verifies the model works for integer identifiers through
// the same generic code path.
func (s *GraphSuite) TestIntVertices() {
	g := core.NewGraph[int](core.WithDirected(true))
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	require.Equal(s.T(), []int{1, 2, 3}, g.Vertices())
	require.True(s.T(), g.HasEdge(1, 2))
	require.False(s.T(), g.HasEdge(2, 1))
}

// TestEnumerationStability verifies insertion-order enumeration is
// reproducible across calls.
func (s *GraphSuite) TestEnumerationStability() {
	g := core.NewGraph[string]()
	for _, v := range []string{"E", "C", "A", "D", "B"} {
		g.AddVertex(v)
	}
	first := g.Vertices()
	second := g.Vertices()
	require.Equal(s.T(), []string{"E", "C", "A", "D", "B"}, first)
	require.Equal(s.T(), first, second)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
