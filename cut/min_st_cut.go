package cut

import (
	"github.com/katalvlaran/gale/core"
	"github.com/katalvlaran/gale/flow"
)

// MinSTCut computes the minimum s-t cut using flow.PushRelabel and returns
// only the cut. Push-relabel is the canonical algorithm behind this entry
// point; same preconditions and errors as flow.PushRelabel.
//
// Complexity: O(V^3).
func MinSTCut[V comparable](g *core.Graph[V], source, sink V, opts flow.FlowOptions) (*flow.Cut[V], error) {
	_, c, err := flow.PushRelabel(g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	return c, nil
}
