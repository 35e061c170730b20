package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gale/connectivity"
	"github.com/katalvlaran/gale/core"
)

// ConnectivitySuite exercises weak and strong decomposition.
type ConnectivitySuite struct {
	suite.Suite
}

// asSets normalizes a component sequence for partition comparison.
func asSets(comps [][]string) []map[string]bool {
	out := make([]map[string]bool, 0, len(comps))
	for _, c := range comps {
		set := make(map[string]bool, len(c))
		for _, v := range c {
			set[v] = true
		}
		out = append(out, set)
	}

	return out
}

// TestWeakUndirectedSplit verifies two undirected islands are reported.
func (s *ConnectivitySuite) TestWeakUndirectedSplit() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)

	ok, comps, err := connectivity.WeaklyConnected(g)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
	require.Equal(s.T(), [][]string{{"A", "B"}, {"C", "D"}}, comps)
}

// TestWeakIgnoresDirection verifies a directed chain is weakly connected.
func (s *ConnectivitySuite) TestWeakIgnoresDirection() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "B", 1)

	ok, comps, err := connectivity.WeaklyConnected(g)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Len(s.T(), comps, 1)
}

// TestStrongRequiresDirected verifies the precondition on both variants.
func (s *ConnectivitySuite) TestStrongRequiresDirected() {
	g := core.NewGraph[string]()
	_, _, err := connectivity.StronglyConnectedGabow(g)
	require.ErrorIs(s.T(), err, connectivity.ErrGraphNotDirected)
	_, _, err = connectivity.StronglyConnectedKosaraju(g)
	require.ErrorIs(s.T(), err, connectivity.ErrGraphNotDirected)
}

// TestNilGraph verifies ErrNilGraph on every entry point.
func (s *ConnectivitySuite) TestNilGraph() {
	_, _, err := connectivity.WeaklyConnected[string](nil)
	require.ErrorIs(s.T(), err, connectivity.ErrNilGraph)
	_, _, err = connectivity.StronglyConnectedGabow[string](nil)
	require.ErrorIs(s.T(), err, connectivity.ErrNilGraph)
	_, _, err = connectivity.StronglyConnectedKosaraju[string](nil)
	require.ErrorIs(s.T(), err, connectivity.ErrNilGraph)
	_, _, err = connectivity.IsConnected[string](nil)
	require.ErrorIs(s.T(), err, connectivity.ErrNilGraph)
}

// TestSingleCycleIsStronglyConnected verifies a directed cycle collapses
// into one component under both algorithms.
func (s *ConnectivitySuite) TestSingleCycleIsStronglyConnected() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "A", 1)

	ok, comps, err := connectivity.StronglyConnectedGabow(g)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Len(s.T(), comps, 1)

	ok, comps, err = connectivity.StronglyConnectedKosaraju(g)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Len(s.T(), comps, 1)
}

// TestTwoDisjointCycles verifies the scenario from the contract: two
// disjoint directed cycles yield (false, two components) identically for
// Gabow and Kosaraju.
func (s *ConnectivitySuite) TestTwoDisjointCycles() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("X", "Y", 1)
	_, _ = g.AddEdge("Y", "X", 1)

	okG, compsG, err := connectivity.StronglyConnectedGabow(g)
	require.NoError(s.T(), err)
	okK, compsK, err := connectivity.StronglyConnectedKosaraju(g)
	require.NoError(s.T(), err)

	require.False(s.T(), okG)
	require.False(s.T(), okK)
	require.Len(s.T(), compsG, 2)
	require.Equal(s.T(), asSets(compsG), asSets(compsK))
}

// TestCondensationChain verifies a DAG of singleton components.
func (s *ConnectivitySuite) TestCondensationChain() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	ok, comps, err := connectivity.StronglyConnectedGabow(g)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
	require.Len(s.T(), comps, 3)
	for _, c := range comps {
		require.Len(s.T(), c, 1)
	}
}

// TestGabowKosarajuAgreeOnMixedGraph verifies identical partitions on a
// graph mixing a 3-cycle, a 2-cycle, and a bridge between them.
func (s *ConnectivitySuite) TestGabowKosarajuAgreeOnMixedGraph() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "A", 1)
	_, _ = g.AddEdge("C", "D", 1) // bridge, one-way
	_, _ = g.AddEdge("D", "E", 1)
	_, _ = g.AddEdge("E", "D", 1)

	_, compsG, err := connectivity.StronglyConnectedGabow(g)
	require.NoError(s.T(), err)
	_, compsK, err := connectivity.StronglyConnectedKosaraju(g)
	require.NoError(s.T(), err)

	require.Equal(s.T(), asSets(compsG), asSets(compsK))
	require.Len(s.T(), compsG, 2)
}

// TestIsConnectedDispatch verifies the strong-if-directed policy.
func (s *ConnectivitySuite) TestIsConnectedDispatch() {
	// Directed chain: weakly connected but NOT strongly connected, so the
	// dispatcher must report false.
	d := core.NewGraph[string](core.WithDirected(true))
	_, _ = d.AddEdge("A", "B", 1)
	ok, comps, err := connectivity.IsConnected(d)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
	require.Len(s.T(), comps, 2)

	// Same topology undirected: connected.
	u := core.NewGraph[string]()
	_, _ = u.AddEdge("A", "B", 1)
	ok, comps, err = connectivity.IsConnected(u)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Len(s.T(), comps, 1)
}

// TestEmptyGraphConnected verifies the empty graph is vacuously connected.
func (s *ConnectivitySuite) TestEmptyGraphConnected() {
	g := core.NewGraph[string]()
	ok, comps, err := connectivity.WeaklyConnected(g)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Empty(s.T(), comps)
}

// TestIdempotence verifies repeated invocations return identical results.
func (s *ConnectivitySuite) TestIdempotence() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("B", "C", 1)

	_, first, err := connectivity.StronglyConnectedGabow(g)
	require.NoError(s.T(), err)
	_, second, err := connectivity.StronglyConnectedGabow(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

func TestConnectivitySuite(t *testing.T) {
	suite.Run(t, new(ConnectivitySuite))
}
