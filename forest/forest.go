// Package forest grows many independent decision trees in parallel.
// Each tree is grown by its own Builder on a single goroutine; trees
// are never shared between goroutines while they grow.
package forest

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.lepak.sg/dtree/growth"
	"go.lepak.sg/dtree/tree"
	"go.lepak.sg/dtree/tree/visitor"
	"golang.org/x/sync/semaphore"
)

// Result describes one grown tree.
type Result struct {
	Seed  int64
	Stats growth.Stats
	// Tree is the grown tree, nil if Err is set.
	Tree *tree.Tree

	Depth  int
	Leaves int
	Nodes  int

	Err error
}

// Grow grows one tree per seed using cfg, with at most inflight
// builders running at once. cfg.Sampler must be nil: every builder
// gets its own *rand.Rand seeded from its seed.
//
// A tree that fails to grow doesn't stop the others; its error is in
// Result.Err.
//
// Context cancellation: If the context is canceled, Grow will
// immediately stop starting new builders, wait for running builders
// to finish, then return the context error. Results of builders
// that never started are left zero apart from Seed.
func Grow(ctx context.Context, cfg growth.Config, seeds []int64, inflight int) (
	results []Result, err error) {
	if cfg.Sampler != nil {
		return nil, errors.New("forest: a shared Sampler cannot be used by parallel builders")
	}
	if inflight < 1 {
		inflight = 1
	}

	results = make([]Result, len(seeds))
	for i, seed := range seeds {
		results[i].Seed = seed
	}

	sema := semaphore.NewWeighted(int64(inflight))

	for i := range seeds {
		err = sema.Acquire(ctx, 1)
		if err != nil {
			// ctx was canceled
			break
		}

		go func(r *Result) {
			defer sema.Release(1)
			grow(cfg, r)
		}(&results[i])
	}

	// waits for every running builder, whether or not ctx was canceled
	_ = sema.Acquire(context.Background(), int64(inflight))

	return results, err
}

func grow(cfg growth.Config, r *Result) {
	cfg.Seed = r.Seed

	b, err := growth.NewBuilder(cfg)
	if err != nil {
		r.Err = err
		return
	}

	err = b.Construct()
	r.Stats = b.Stats()
	if err != nil {
		r.Err = errors.Wrapf(err, "seed %d", r.Seed)
		return
	}

	r.Tree = b.Tree()
	root := r.Tree.Root()

	var depth visitor.Depth
	var leaves visitor.CountLeaves
	var nodes visitor.CountNodes
	visitor.Walk(root, &depth, visitor.BreadthFirst)
	visitor.Walk(root, &leaves, visitor.BreadthFirst)
	visitor.Walk(root, &nodes, visitor.PreOrder)

	r.Depth = depth.Result()
	r.Leaves = leaves.Result()
	r.Nodes = nodes.Result()
}
