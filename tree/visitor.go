package tree

// Visitor computes something over the nodes of a tree.
// Node.Accept selects the method matching the node's variant.
// Visitors must not change the structure of the tree.
type Visitor interface {
	VisitDecisionNode(n *DecisionNode)
	VisitLeafNode(n *LeafNode)
}
