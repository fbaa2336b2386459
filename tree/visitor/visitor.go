// Package visitor provides visitors that aggregate over a decision
// tree, and a driver that walks a tree with one.
package visitor

import (
	"github.com/cockroachdb/errors"
	"go.lepak.sg/dtree/tree"
	"go.lepak.sg/dtree/tree/iterator"
)

var (
	_ tree.Visitor = (*Depth)(nil)
	_ tree.Visitor = (*CountLeaves)(nil)
	_ tree.Visitor = (*CountNodes)(nil)
)

// Order selects the traversal Walk uses.
type Order int

const (
	BreadthFirst Order = iota
	PreOrder
)

func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "bfs"
	case PreOrder:
		return "preorder"
	default:
		return "<invalid visitor.Order>"
	}
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "bfs":
		return BreadthFirst, nil
	case "preorder":
		return PreOrder, nil
	default:
		return 0, errors.Newf("unknown traversal order %q", s)
	}
}

// Iterator returns a fresh iterator over root in order o.
func (o Order) Iterator(root tree.Node) iterator.Iterator {
	if o == PreOrder {
		return iterator.NewPreOrder(root, 0)
	}
	return iterator.NewBFS(root)
}

// Walk calls Accept with v on every node of the tree rooted at root.
func Walk(root tree.Node, v tree.Visitor, o Order) {
	i := o.Iterator(root)
	for i.Next() {
		i.Item().Accept(v)
	}
}

// Depth finds the depth of the deepest visited node.
// The root is at depth 0.
type Depth struct {
	max int
}

func (d *Depth) VisitDecisionNode(n *tree.DecisionNode) { d.visit(n) }
func (d *Depth) VisitLeafNode(n *tree.LeafNode)         { d.visit(n) }

func (d *Depth) visit(n tree.Node) {
	// O(depth) per node; trees grown here stay shallow
	if depth := n.Depth(); depth > d.max {
		d.max = depth
	}
}

func (d *Depth) Result() int {
	return d.max
}

// CountLeaves counts leaf nodes.
type CountLeaves struct {
	count int
}

func (c *CountLeaves) VisitDecisionNode(*tree.DecisionNode) {}
func (c *CountLeaves) VisitLeafNode(*tree.LeafNode)         { c.count++ }

func (c *CountLeaves) Result() int {
	return c.count
}

// CountNodes counts every node, decision and leaf.
type CountNodes struct {
	count int
}

func (c *CountNodes) VisitDecisionNode(*tree.DecisionNode) { c.count++ }
func (c *CountNodes) VisitLeafNode(*tree.LeafNode)         { c.count++ }

func (c *CountNodes) Result() int {
	return c.count
}
