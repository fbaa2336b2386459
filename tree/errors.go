package tree

import "github.com/cockroachdb/errors"

var (
	// ErrStructural means a tree is not shaped the way an operation
	// needs it to be, for example a decision node queried before it
	// has two children. A finished tree never causes it.
	ErrStructural = errors.New("tree: structural violation")

	// ErrNotFound means a node was not a child of the node it was
	// removed from.
	ErrNotFound = errors.New("tree: node not found")
)
