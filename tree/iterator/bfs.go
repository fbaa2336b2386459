package iterator

import (
	"go.lepak.sg/dtree/tree"
)

var _ Iterator = (*BFS)(nil)

// BFS is a breadth-first (level order) iterator. All nodes at depth d
// are yielded before any node at depth d+1.
//
// The queue is open to the code driving the iteration: Enqueue may be
// called between calls to Next to append nodes that were created after
// their parent was yielded. Appended nodes are yielded after everything
// already queued, in the order they were appended. Nodes already yielded
// are never yielded again.
type BFS struct {
	queue []tree.Node
	head  int
	at    tree.Node
}

// NewBFS creates a new breadth-first iterator starting at root.
func NewBFS(root tree.Node) *BFS {
	i := &BFS{}
	if root != nil {
		i.queue = append(i.queue, root)
	}
	return i
}

// Next dequeues the front of the queue and enqueues its children
// left to right.
func (i *BFS) Next() bool {
	if i == nil || i.head == len(i.queue) {
		return false
	}

	i.at = i.queue[i.head]
	i.queue[i.head] = nil
	i.head++

	if i.at.IsComposite() {
		i.queue = append(i.queue, i.at.Children()...)
	}

	// reclaim the consumed prefix once it dominates the backing array
	if i.head > 32 && i.head*2 > len(i.queue) {
		n := copy(i.queue, i.queue[i.head:])
		clear(i.queue[n:])
		i.queue = i.queue[:n]
		i.head = 0
	}

	return true
}

// Item returns the node yielded by the last call to Next.
func (i *BFS) Item() tree.Node {
	return i.at
}

// Enqueue appends nodes to the back of the queue.
func (i *BFS) Enqueue(nodes ...tree.Node) {
	for _, n := range nodes {
		if n != nil {
			i.queue = append(i.queue, n)
		}
	}
}

// Len returns the number of nodes waiting in the queue.
func (i *BFS) Len() int {
	return len(i.queue) - i.head
}
