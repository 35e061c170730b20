package connectivity

import "github.com/katalvlaran/gale/core"

// IsConnected reports whether the graph is connected, dispatching on
// directedness: strong connectivity (Kosaraju) for directed graphs, weak
// connectivity otherwise.
//
// Strong connectivity is the natural notion for directed graphs, so the
// two branches answer genuinely different questions behind one name. This
// is a deliberate, preserved policy; callers needing a specific notion
// should invoke WeaklyConnected or one of the strong variants directly.
//
// Complexity: O(V + E).
func IsConnected[V comparable](g *core.Graph[V]) (bool, [][]V, error) {
	if g == nil {
		return false, nil, ErrNilGraph
	}
	if g.Directed() {
		return StronglyConnectedKosaraju(g)
	}

	return WeaklyConnected(g)
}
