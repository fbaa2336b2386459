package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/dtree/tree"
)

// newBranchyTree builds a root with two branch children
// and four leaf grandchildren.
func newBranchyTree(t *testing.T) tree.Node {
	root := tree.NewDecisionNode(0, 50)
	b1 := tree.NewDecisionNode(1, 25)
	b2 := tree.NewDecisionNode(2, 75)

	require.NoError(t, b1.Add(tree.NewLeafNode(3, "Rosa")))
	require.NoError(t, b1.Add(tree.NewLeafNode(4, "Rosa")))
	require.NoError(t, b2.Add(tree.NewLeafNode(5, "Verde")))
	require.NoError(t, b2.Add(tree.NewLeafNode(6, "Verde")))
	require.NoError(t, root.Add(b1))
	require.NoError(t, root.Add(b2))

	return root
}

// newChain builds a tree of the given height where every right child
// is a decision node and every left child is a leaf.
func newChain(t *testing.T, height int) tree.Node {
	var seq tree.OrderSeq
	root := tree.NewDecisionNode(seq.Next(), 0)
	at := root
	for h := 1; h <= height; h++ {
		require.NoError(t, at.Add(tree.NewLeafNode(seq.Next(), "l")))
		if h == height {
			require.NoError(t, at.Add(tree.NewLeafNode(seq.Next(), "r")))
			break
		}
		next := tree.NewDecisionNode(seq.Next(), float64(h))
		require.NoError(t, at.Add(next))
		at = next
	}
	return root
}

func TestVisitors(t *testing.T) {
	tests := []struct {
		name       string
		create     func(t *testing.T) tree.Node
		wantDepth  int
		wantLeaves int
		wantNodes  int
	}{
		{
			name: "empty",
			create: func(t *testing.T) tree.Node {
				return nil
			},
		},
		{
			name: "leaf",
			create: func(t *testing.T) tree.Node {
				return tree.NewLeafNode(0, "Rosa")
			},
			wantLeaves: 1,
			wantNodes:  1,
		},
		{
			name: "childless decision",
			create: func(t *testing.T) tree.Node {
				return tree.NewDecisionNode(0, 1)
			},
			wantNodes: 1,
		},
		{
			name:       "branchy",
			create:     newBranchyTree,
			wantDepth:  2,
			wantLeaves: 4,
			wantNodes:  7,
		},
		{
			name: "chain",
			create: func(t *testing.T) tree.Node {
				return newChain(t, 5)
			},
			wantDepth:  5,
			wantLeaves: 6,
			wantNodes:  11,
		},
	}
	for _, tt := range tests {
		for _, o := range []Order{BreadthFirst, PreOrder} {
			t.Run(tt.name+"/"+o.String(), func(t *testing.T) {
				root := tt.create(t)

				var depth Depth
				var leaves CountLeaves
				var nodes CountNodes
				Walk(root, &depth, o)
				Walk(root, &leaves, o)
				Walk(root, &nodes, o)

				assert.Equal(t, tt.wantDepth, depth.Result(), "depth")
				assert.Equal(t, tt.wantLeaves, leaves.Result(), "leaves")
				assert.Equal(t, tt.wantNodes, nodes.Result(), "nodes")
			})
		}
	}
}

func TestCountLeaves_OrderIndependent(t *testing.T) {
	root := newChain(t, 8)

	var bfs, pre CountLeaves
	Walk(root, &bfs, BreadthFirst)
	Walk(root, &pre, PreOrder)

	assert.Equal(t, bfs.Result(), pre.Result())
	assert.Equal(t, 9, bfs.Result())
}

func TestDepth_Subtree(t *testing.T) {
	// depth is measured from the top-most ancestor,
	// not from where the walk starts
	root := newBranchyTree(t)

	var d Depth
	Walk(root.Children()[1], &d, BreadthFirst)
	assert.Equal(t, 2, d.Result())
}

type dispatchRecorder struct {
	decisions, leaves []int
}

func (r *dispatchRecorder) VisitDecisionNode(n *tree.DecisionNode) {
	r.decisions = append(r.decisions, n.Order())
}

func (r *dispatchRecorder) VisitLeafNode(n *tree.LeafNode) {
	r.leaves = append(r.leaves, n.Order())
}

func TestAccept_DoubleDispatch(t *testing.T) {
	var r dispatchRecorder
	Walk(newBranchyTree(t), &r, PreOrder)

	assert.Equal(t, []int{0, 1, 2}, r.decisions)
	assert.Equal(t, []int{3, 4, 5, 6}, r.leaves)
}

func TestParseOrder(t *testing.T) {
	for _, o := range []Order{BreadthFirst, PreOrder} {
		got, err := ParseOrder(o.String())
		assert.NoError(t, err)
		assert.Equal(t, o, got)
	}

	_, err := ParseOrder("inorder")
	assert.Error(t, err)
	assert.Equal(t, "<invalid visitor.Order>", Order(7).String())
}
