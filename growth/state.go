package growth

import (
	"go.lepak.sg/dtree/tree"
	"go.lepak.sg/dtree/tree/iterator"
	"golang.org/x/exp/slices"
)

var (
	_ tree.State = (*Splitting)(nil)
	_ tree.State = (*Pruning)(nil)
	_ tree.State = (*Stopping)(nil)
)

// Splitting gives every childless decision node it is handed two
// decision node children. After each node it switches the tree to
// Pruning with probability PPrune.
type Splitting struct {
	b *Builder
}

func (s *Splitting) String() string { return "splitting" }

func (s *Splitting) Execute(t *tree.Tree, n tree.Node) error {
	if c, ok := n.(tree.Composite); ok && len(c.Children()) == 0 {
		for side := 0; side < 2; side++ {
			child := tree.NewDecisionNode(s.b.orders.Next(), s.b.threshold(c, side))
			if err := c.Add(child); err != nil {
				return err
			}
		}
		s.b.stats.Splits++
	}

	if !s.b.cfg.NeverPrune && s.b.cfg.Sampler.Float64() < s.b.cfg.PPrune {
		t.SetState(&Pruning{b: s.b})
	}
	return nil
}

// Pruning stops the tree from growing. Each childless node it is
// handed is removed with probability PRemove (never, with NeverRemove),
// and then the tree switches to Stopping with probability PStop.
//
// A decision node never keeps a single child, so removing a node
// removes its sibling too: the parent's split is undone and the
// parent becomes childless.
type Pruning struct {
	b *Builder
}

func (s *Pruning) String() string { return "pruning" }

func (s *Pruning) Execute(t *tree.Tree, n tree.Node) error {
	if len(n.Children()) != 0 {
		return nil
	}

	if !s.b.cfg.NeverRemove && s.b.cfg.Sampler.Float64() < s.b.cfg.PRemove {
		if err := s.prune(t, n); err != nil {
			return err
		}
	}

	if !s.b.cfg.NeverStop && s.b.cfg.Sampler.Float64() < s.b.cfg.PStop {
		t.SetState(&Stopping{b: s.b})
	}
	return nil
}

func (s *Pruning) prune(t *tree.Tree, n tree.Node) error {
	if n == t.Root() {
		return nil
	}

	parent := n.Parent()
	if parent == nil || parent.IndexOf(n) < 0 {
		s.b.stats.Stale++
		s.b.cfg.Logger.Infof("growth: not pruning %s, its parent link is stale", n)
		return nil
	}

	if err := parent.Remove(n); err != nil {
		return err
	}
	for _, sibling := range slices.Clone(parent.Children()) {
		if err := parent.Remove(sibling); err != nil {
			return err
		}
	}

	s.b.stats.Prunes++
	return nil
}

// Stopping finishes the tree. It ignores the node it is handed and
// sweeps the whole tree breadth-first, giving every childless decision
// node two leaves. It then returns iterator.Done to end the traversal
// driving the growth.
type Stopping struct {
	b *Builder
}

func (s *Stopping) String() string { return "stopping" }

func (s *Stopping) Execute(t *tree.Tree, _ tree.Node) error {
	i := iterator.NewBFS(t.Root())
	for i.Next() {
		c, ok := i.Item().(tree.Composite)
		if !ok || len(c.Children()) != 0 {
			continue
		}

		for side := 0; side < 2; side++ {
			leaf := tree.NewLeafNode(s.b.orders.Next(), s.b.cfg.Categories[side])
			if err := c.Add(leaf); err != nil {
				return err
			}
			s.b.stats.Leaves++
		}
	}

	return iterator.Done
}
