package tree

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"golang.org/x/exp/slices"
)

// Node is a vertex of a decision tree. There are exactly two
// implementations: *DecisionNode and *LeafNode.
//
// Parent is a non-owning back reference. A parent owns its children
// through its child list; the parent link is only followed to compute
// depth and to prune.
type Node interface {
	// Order is the creation-sequence id of the node.
	Order() int
	// Parent returns the decision node that owns this node,
	// or nil for a root or a detached node.
	Parent() *DecisionNode
	// Children returns the node's children, left to right.
	// The returned slice must not be modified.
	Children() []Node
	// IsComposite is true if the node can own children.
	IsComposite() bool
	// Operation descends the subtree rooted at this node
	// and returns the category of the leaf it reaches.
	Operation(v float64) (string, error)
	// Accept calls the method of v matching the node's variant.
	Accept(v Visitor)
	// Depth is the number of parent hops to the top-most ancestor.
	Depth() int

	setParent(p *DecisionNode)
}

// Composite is a node that can own children.
type Composite interface {
	Node
	Add(child Node) error
	Remove(child Node) error
}

var (
	_ Composite = (*DecisionNode)(nil)
	_ Node      = (*DecisionNode)(nil)
	_ Node      = (*LeafNode)(nil)

	_ redact.SafeFormatter = (*DecisionNode)(nil)
	_ redact.SafeFormatter = (*LeafNode)(nil)
)

// DecisionNode routes a query to its first child if the queried value
// is less than its threshold, and to its second child otherwise.
//
// A DecisionNode has 0 or 2 children whenever it can be observed
// by a traversal. It has 1 child only transiently, within a single
// growth step.
type DecisionNode struct {
	threshold float64
	order     int
	children  []Node
	parent    *DecisionNode
}

// NewDecisionNode returns a childless, parentless decision node.
func NewDecisionNode(order int, threshold float64) *DecisionNode {
	return &DecisionNode{
		threshold: threshold,
		order:     order,
	}
}

func (n *DecisionNode) Threshold() float64        { return n.threshold }
func (n *DecisionNode) Order() int                { return n.order }
func (n *DecisionNode) Parent() *DecisionNode     { return n.parent }
func (n *DecisionNode) Children() []Node          { return n.children }
func (n *DecisionNode) IsComposite() bool         { return true }
func (n *DecisionNode) Accept(v Visitor)          { v.VisitDecisionNode(n) }
func (n *DecisionNode) Depth() int                { return depth(n) }
func (n *DecisionNode) setParent(p *DecisionNode) { n.parent = p }

// Operation returns the category of the leaf reached by descending
// from n with v. It returns an error wrapping ErrStructural if a
// decision node on the way has fewer than two children.
func (n *DecisionNode) Operation(v float64) (string, error) {
	if len(n.children) < 2 {
		return "", errors.Wrapf(ErrStructural,
			"querying %s with %d children", n, len(n.children))
	}

	if v < n.threshold {
		return n.children[0].Operation(v)
	}
	return n.children[1].Operation(v)
}

// Add appends child to the children of n and makes n its parent.
// The child must be parentless, must not be an ancestor of n,
// and n must have fewer than two children.
func (n *DecisionNode) Add(child Node) error {
	if child == nil {
		return errors.Wrapf(ErrStructural, "adding nil child to %s", n)
	}

	if len(n.children) >= 2 {
		return errors.Wrapf(ErrStructural,
			"adding %s to %s which already has 2 children", child, n)
	}

	if p := child.Parent(); p != nil {
		return errors.Wrapf(ErrStructural,
			"adding %s to %s but it is owned by %s", child, n, p)
	}

	// the child is parentless, so the only way to close a cycle is for
	// the child to be n itself or the top of n's ancestry
	for a := n; a != nil; a = a.parent {
		if Node(a) == child {
			return errors.Wrapf(ErrStructural,
				"adding %s to %s would create a cycle", child, n)
		}
	}

	n.children = append(n.children, child)
	child.setParent(n)
	return nil
}

// Remove detaches child from n. Children are matched by identity,
// so two leaves with the same category are never confused.
// It returns an error wrapping ErrNotFound if child is not a child of n.
func (n *DecisionNode) Remove(child Node) error {
	i := n.IndexOf(child)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "%s is not a child of %s", child, n)
	}

	// clear the vacated tail slot so it doesn't keep the
	// removed node reachable
	last := len(n.children) - 1
	copy(n.children[i:], n.children[i+1:])
	n.children[last] = nil
	n.children = n.children[:last]
	child.setParent(nil)
	return nil
}

// IndexOf returns the position of child among the children of n,
// or -1 if it is not a child.
func (n *DecisionNode) IndexOf(child Node) int {
	return slices.IndexFunc(n.children, func(c Node) bool {
		return c == child
	})
}

// SafeFormat implements redact.SafeFormatter.
func (n *DecisionNode) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("#%d <%v", redact.SafeInt(n.order), redact.SafeFloat(n.threshold))
}

func (n *DecisionNode) String() string {
	return redact.StringWithoutMarkers(n)
}

// LeafNode is a terminal node carrying a category.
type LeafNode struct {
	category string
	order    int
	parent   *DecisionNode
}

// NewLeafNode returns a parentless leaf node.
func NewLeafNode(order int, category string) *LeafNode {
	return &LeafNode{
		category: category,
		order:    order,
	}
}

func (n *LeafNode) Category() string          { return n.category }
func (n *LeafNode) Order() int                { return n.order }
func (n *LeafNode) Parent() *DecisionNode     { return n.parent }
func (n *LeafNode) Children() []Node          { return nil }
func (n *LeafNode) IsComposite() bool         { return false }
func (n *LeafNode) Accept(v Visitor)          { v.VisitLeafNode(n) }
func (n *LeafNode) Depth() int                { return depth(n) }
func (n *LeafNode) setParent(p *DecisionNode) { n.parent = p }

// Operation returns the category of the leaf.
func (n *LeafNode) Operation(float64) (string, error) {
	return n.category, nil
}

// SafeFormat implements redact.SafeFormatter.
// Categories are user data and are not marked safe.
func (n *LeafNode) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("#%d %s", redact.SafeInt(n.order), n.category)
}

func (n *LeafNode) String() string {
	return redact.StringWithoutMarkers(n)
}

func depth(n Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.parent {
		d++
	}
	return d
}

// OrderSeq hands out order ids. The zero OrderSeq starts at 0.
// Ids are never reused.
type OrderSeq struct {
	next int
}

// Next returns the next unused order id.
func (s *OrderSeq) Next() int {
	o := s.next
	s.next++
	return o
}

// Peek returns the id the next call to Next will return.
func (s *OrderSeq) Peek() int {
	return s.next
}
