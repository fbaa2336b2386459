// Package iterator provides traversal iterators over decision trees.
package iterator

import (
	"github.com/cockroachdb/errors"
	"go.lepak.sg/dtree/tree"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Once Next has returned false it keeps returning false.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := iterator.NewBFS(root)
//	for i.Next() {
//		n := i.Item()
//		... do stuff with n, or break ...
//	}
//
// Iterators are single pass. To traverse a tree again,
// create a new iterator over the same root.
type Iterator interface {
	Next() bool
	Item() tree.Node
}

// Done is returned by code driving an iteration to end it early.
// It signals the end of the sequence, not a failure.
var Done = errors.New("iterator: no more nodes")
