// Package tree provides a binary decision tree: decision nodes that
// route a numeric value by threshold, leaf nodes that carry a
// category, and a Tree container that owns the root and the state
// currently driving its growth.
package tree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// State is a phase of tree growth. Execute handles one node of the
// traversal driving the growth, and may mutate the tree or switch
// the tree to another state with SetState.
type State interface {
	Execute(t *Tree, n Node) error
	fmt.Stringer
}

// Tree owns a root node and the current growth state.
//
// Tree is not safe for concurrent use. It may be mutated while it is
// being traversed, but only from the goroutine doing the traversal.
type Tree struct {
	root  Node
	state State
}

// New returns a tree rooted at root in the initial state.
// Both may be nil.
func New(root Node, initial State) *Tree {
	return &Tree{
		root:  root,
		state: initial,
	}
}

func (t *Tree) Root() Node {
	return t.root
}

func (t *Tree) State() State {
	return t.state
}

// SetState switches the tree to s. The switch takes effect
// from the next call to Execute.
func (t *Tree) SetState(s State) {
	t.state = s
}

// Execute hands n to the current state.
func (t *Tree) Execute(n Node) error {
	if t.state == nil {
		return errors.AssertionFailedf("tree has no state")
	}
	return t.state.Execute(t, n)
}

// Operation descends the tree with v and returns the category of the
// leaf it reaches.
func (t *Tree) Operation(v float64) (string, error) {
	if t.root == nil {
		return "", errors.Wrap(ErrStructural, "querying an empty tree")
	}
	return t.root.Operation(v)
}

// Attached returns true if n reaches the root of t through parent links.
// Nodes removed by pruning, and everything below them, are not attached.
func (t *Tree) Attached(n Node) bool {
	if n == nil || t.root == nil {
		return false
	}

	top := n
	for p := n.Parent(); p != nil; p = p.Parent() {
		top = p
	}
	return top == t.root
}

// Validate checks the invariants of a finished tree:
//   - every decision node has exactly two children
//   - every child points back at its parent, and the root has no parent
//   - no node is reachable twice (so there are no cycles)
//   - order ids are pairwise distinct
//
// The returned error wraps ErrStructural.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}

	if t.root.Parent() != nil {
		return errors.Wrapf(ErrStructural, "root %s has parent %s",
			t.root, t.root.Parent())
	}

	seen := make(map[Node]struct{})
	orders := make(map[int]Node)
	stack := []Node{t.root}

	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[n]; ok {
			return errors.Wrapf(ErrStructural, "%s is reachable twice", n)
		}
		seen[n] = struct{}{}

		if other, ok := orders[n.Order()]; ok {
			return errors.Wrapf(ErrStructural,
				"%s and %s share order %d", n, other, n.Order())
		}
		orders[n.Order()] = n

		if !n.IsComposite() {
			continue
		}

		children := n.Children()
		if len(children) != 2 {
			return errors.Wrapf(ErrStructural,
				"%s has %d children", n, len(children))
		}

		for _, c := range children {
			if Node(c.Parent()) != n {
				return errors.Wrapf(ErrStructural,
					"%s is a child of %s but points at %s", c, n, c.Parent())
			}
			stack = append(stack, c)
		}
	}

	return nil
}

// String returns a drawing of the tree. The tree grown from a root
// with threshold 50 would look like this:
//
//	#0 <50
//	├─L─#1 <25
//	│   ├─L─#3 Rosa
//	│   └─R─#4 Verde
//	└─R─#2 <75
//	    ├─L─#5 Rosa
//	    └─R─#6 Verde
func (t *Tree) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit(sb *strings.Builder, n Node, prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n))
	sb.WriteRune('\n')

	children := n.Children()
	for i, c := range children {
		b := treeLeftBranch
		if i > 0 {
			b = treeRightBranch
		}
		printvisit(sb, c, prefix, b, false, i < len(children)-1)
	}
}
