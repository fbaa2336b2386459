package iterator

import (
	"go.lepak.sg/dtree/tree"
)

var _ Iterator = (*PreOrder)(nil)

// PreOrder is a depth-first iterator that yields each node before
// its descendants, and a left subtree before the right one.
// It keeps an explicit stack of nodes still to be visited, so it
// doesn't need parent links and doesn't recurse.
//
// Children are read when their parent is yielded. Children added
// to a node after it has been yielded are not visited.
type PreOrder struct {
	stack []tree.Node
	at    tree.Node
}

// NewPreOrder creates a new pre-order iterator over the tree rooted
// at root. If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewPreOrder(root tree.Node, heightHint int) *PreOrder {
	i := &PreOrder{
		stack: make([]tree.Node, 0, heightHint+2),
	}
	if root != nil {
		i.stack = append(i.stack, root)
	}
	return i
}

// Next pops the top of the stack and pushes its children
// in reverse, so the leftmost child is popped next.
func (i *PreOrder) Next() bool {
	if i == nil || len(i.stack) == 0 {
		return false
	}

	top := len(i.stack) - 1
	i.at = i.stack[top]
	i.stack[top] = nil
	i.stack = i.stack[:top]

	if i.at.IsComposite() {
		children := i.at.Children()
		for j := len(children) - 1; j >= 0; j-- {
			i.stack = append(i.stack, children[j])
		}
	}

	return true
}

// Item returns the node yielded by the last call to Next.
func (i *PreOrder) Item() tree.Node {
	return i.at
}
