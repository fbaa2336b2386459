// Package growth grows decision trees breadth-first with a three state
// machine: Splitting adds decision nodes, Pruning undoes some splits,
// and Stopping caps every open branch with leaves.
//
// The usual usage looks like this:
//
//	b, err := growth.NewBuilder(growth.Config{Seed: 1})
//	if err != nil {
//		...
//	}
//	if err := b.Construct(); err != nil {
//		...
//	}
//	category, err := b.Tree().Operation(42)
package growth

import (
	"github.com/cockroachdb/errors"
	"go.lepak.sg/dtree/tree"
	"go.lepak.sg/dtree/tree/iterator"
)

// ErrResourceExhausted means growth ran for Config.MaxSteps steps
// without finishing.
var ErrResourceExhausted = errors.New("growth: resource exhausted")

// Builder grows one tree. It is not safe for concurrent use.
type Builder struct {
	cfg Config
	// shared by the builder and every state so ids are never reused
	orders tree.OrderSeq
	tree   *tree.Tree
	stats  Stats
	used   bool
}

// NewBuilder returns a Builder for cfg, with defaults filled in.
func NewBuilder(cfg Config) (*Builder, error) {
	cfg.EnsureDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Builder{cfg: cfg}, nil
}

// Construct grows a tree. It creates a root decision node and walks the
// tree breadth-first while it grows, handing each node to the tree's
// current state. Children created by a state are appended to the
// traversal, so they are visited after everything already queued.
//
// Growth ends when Stopping finishes the tree. If the traversal runs
// out of nodes first, the tree is switched to Stopping and finished
// anyway. Construct fails with ErrResourceExhausted after
// Config.MaxSteps steps, and then Tree returns nil.
//
// Construct may only be called once.
func (b *Builder) Construct() error {
	if b.used {
		return errors.New("growth: Construct called twice")
	}
	b.used = true

	root := tree.NewDecisionNode(b.orders.Next(), b.cfg.RootThreshold)
	t := tree.New(root, &Splitting{b: b})
	i := iterator.NewBFS(root)

	for i.Next() {
		n := i.Item()

		if !t.Attached(n) {
			// queued before an ancestor was pruned
			b.stats.Stale++
			b.cfg.Logger.Infof("growth: skipping %s, it was pruned before it was reached", n)
			continue
		}

		if b.stats.Steps == b.cfg.MaxSteps {
			return errors.Wrapf(ErrResourceExhausted,
				"%d steps in %s with %d nodes queued", b.stats.Steps, t.State(), i.Len()+1)
		}
		b.stats.Steps++

		childless := len(n.Children()) == 0

		err := t.Execute(n)
		if errors.Is(err, iterator.Done) {
			b.finish(t)
			return nil
		} else if err != nil {
			return err
		}

		// children present at dequeue were already queued by i.Next
		if childless && n.IsComposite() {
			i.Enqueue(n.Children()...)
		}
	}

	b.cfg.Logger.Infof("growth: traversal ran out of nodes in %s, stopping", t.State())
	t.SetState(&Stopping{b: b})
	if err := t.Execute(root); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}

	b.finish(t)
	return nil
}

func (b *Builder) finish(t *tree.Tree) {
	b.tree = t
	b.stats.Final = t.State().String()
}

// Tree returns the tree grown by Construct, or nil if Construct has not
// succeeded.
func (b *Builder) Tree() *tree.Tree {
	return b.tree
}

// Stats returns what Construct did so far.
func (b *Builder) Stats() Stats {
	return b.stats
}

func (b *Builder) threshold(parent tree.Composite, side int) float64 {
	if b.cfg.Threshold != nil {
		d, _ := parent.(*tree.DecisionNode)
		return b.cfg.Threshold(b.cfg.Sampler, d, side)
	}
	return b.cfg.Thresholds[side]
}
