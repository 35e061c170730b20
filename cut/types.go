package cut

import (
	"errors"
	"math"

	"github.com/katalvlaran/gale/flow"
)

// Sentinel errors for cut and flow-tree construction.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("cut: graph is nil")

	// ErrDirectedGraph is returned when an undirected-only routine
	// receives a directed graph.
	ErrDirectedGraph = errors.New("cut: graph must be undirected")

	// ErrTooFewVertices is returned by StoerWagner for graphs with fewer
	// than two vertices.
	ErrTooFewVertices = errors.New("cut: graph must have at least two vertices")

	// ErrNegativeWeight is returned by StoerWagner on negative edge weights.
	ErrNegativeWeight = errors.New("cut: negative edge weight")

	// ErrNonPositiveWeight is returned by OddMinCutSetPadbergRao on
	// zero or negative edge weights.
	ErrNonPositiveWeight = errors.New("cut: edge weights must be strictly positive")

	// ErrNonSimpleGraph is returned by OddMinCutSetPadbergRao when the
	// graph contains self-loops or parallel edges.
	ErrNonSimpleGraph = errors.New("cut: graph must be simple (no loops, no multi-edges)")

	// ErrOddVertices is returned when the odd-vertex set is empty or has
	// odd cardinality.
	ErrOddVertices = errors.New("cut: odd vertex set must be non-empty with even cardinality")

	// ErrVertexNotFound is returned when a referenced vertex is absent.
	ErrVertexNotFound = errors.New("cut: vertex not found")
)

// TreeEdge is one edge of a flow tree. Tree edges are undirected; From/To
// record construction order only.
type TreeEdge[V comparable] struct {
	From, To V
	Weight   float64
}

// flowTree is the shared Gusfield scaffold: a rooted tree over the graph's
// vertex set, stored as parent links with a weight per link. Vertex 0 (in
// insertion order) is the root.
type flowTree[V comparable] struct {
	verts  []V
	pos    map[V]int
	parent []int     // parent[0] == -1
	weight []float64 // weight of the link to parent; weight[0] unused
	depth  []int
}

// edges lists the n-1 tree links in vertex-index order.
func (t *flowTree[V]) edges() []TreeEdge[V] {
	out := make([]TreeEdge[V], 0, len(t.verts))
	for i := 1; i < len(t.verts); i++ {
		out = append(out, TreeEdge[V]{From: t.verts[i], To: t.verts[t.parent[i]], Weight: t.weight[i]})
	}

	return out
}

// pathMin returns the minimum link weight on the tree path between u and v.
// Complexity: O(V) worst case.
func (t *flowTree[V]) pathMin(u, v V) (float64, error) {
	iu, ok := t.pos[u]
	if !ok {
		return 0, ErrVertexNotFound
	}
	iv, ok := t.pos[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	minW := func(cur float64, w float64) float64 {
		if w < cur {
			return w
		}
		return cur
	}
	best := math.Inf(1)
	// Lift the deeper endpoint until the two walks meet.
	for iu != iv {
		if t.depth[iu] >= t.depth[iv] {
			best = minW(best, t.weight[iu])
			iu = t.parent[iu]
		} else {
			best = minW(best, t.weight[iv])
			iv = t.parent[iv]
		}
	}

	return best, nil
}

// splitAt returns the vertices on u's side of the tree after removing the
// lightest link of the path between u and v, together with that weight.
// Used to reconstruct an explicit Cut from the tree.
// Complexity: O(V).
func (t *flowTree[V]) splitAt(u, v V) (float64, []V, error) {
	iu, ok := t.pos[u]
	if !ok {
		return 0, nil, ErrVertexNotFound
	}
	iv, ok := t.pos[v]
	if !ok {
		return 0, nil, ErrVertexNotFound
	}

	// Locate the lightest link on the path (ties: the first encountered
	// while lifting, deterministic for a fixed tree).
	best := math.Inf(1)
	bestChild := -1
	a, b := iu, iv
	for a != b {
		if t.depth[a] >= t.depth[b] {
			if t.weight[a] < best {
				best = t.weight[a]
				bestChild = a
			}
			a = t.parent[a]
		} else {
			if t.weight[b] < best {
				best = t.weight[b]
				bestChild = b
			}
			b = t.parent[b]
		}
	}

	// Collect the subtree under bestChild; u's side is that subtree iff u
	// lies inside it.
	inSub := t.subtree(bestChild)
	side := make([]V, 0, len(t.verts))
	uInside := inSub[iu]
	for i, val := range t.verts {
		if inSub[i] == uInside {
			side = append(side, val)
		}
	}

	return best, side, nil
}

// subtree marks every vertex in the subtree rooted at child index c.
func (t *flowTree[V]) subtree(c int) []bool {
	n := len(t.verts)
	children := make([][]int, n)
	for i := 1; i < n; i++ {
		children[t.parent[i]] = append(children[t.parent[i]], i)
	}
	mark := make([]bool, n)
	stack := []int{c}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		mark[x] = true
		stack = append(stack, children[x]...)
	}

	return mark
}

// GomoryHuTree summarizes the pairwise minimum-cut values of an undirected
// network: for any two vertices, the minimum link weight on the tree path
// between them equals their min-cut value in the original graph.
type GomoryHuTree[V comparable] struct {
	tree flowTree[V]
}

// Edges returns the n-1 tree edges with their min-cut weights.
func (t *GomoryHuTree[V]) Edges() []TreeEdge[V] { return t.tree.edges() }

// MinCutValue returns the minimum-cut value between u and v.
// Errors: ErrVertexNotFound. Complexity: O(V).
func (t *GomoryHuTree[V]) MinCutValue(u, v V) (float64, error) { return t.tree.pathMin(u, v) }

// MinCut reconstructs an explicit minimum u-v cut by splitting the tree at
// the lightest link of the u-v path; the returned source partition is the
// side containing u.
// Errors: ErrVertexNotFound. Complexity: O(V).
func (t *GomoryHuTree[V]) MinCut(u, v V) (*flow.Cut[V], error) {
	w, side, err := t.tree.splitAt(u, v)
	if err != nil {
		return nil, err
	}

	return flow.NewCut(w, side), nil
}

// EquivalentFlowTree summarizes the pairwise maximum-flow values of an
// undirected network. Structurally identical to a Gomory-Hu tree, but its
// weights are tracked as max-flow values - the dual artifact.
type EquivalentFlowTree[V comparable] struct {
	tree flowTree[V]
}

// Edges returns the n-1 tree edges with their max-flow weights.
func (t *EquivalentFlowTree[V]) Edges() []TreeEdge[V] { return t.tree.edges() }

// MaxFlowValue returns the maximum-flow value between u and v.
// Errors: ErrVertexNotFound. Complexity: O(V).
func (t *EquivalentFlowTree[V]) MaxFlowValue(u, v V) (float64, error) { return t.tree.pathMin(u, v) }
