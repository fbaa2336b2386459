package growth

import (
	"math/rand"

	"github.com/cockroachdb/errors"
	"go.lepak.sg/dtree/tree"
)

const (
	// DefaultPPrune is the default chance of leaving Splitting after a node.
	DefaultPPrune = 0.1
	// DefaultPRemove is the default chance of pruning a childless node.
	DefaultPRemove = 0.5
	// DefaultPStop is the default chance of leaving Pruning after a childless node.
	DefaultPStop = 0.2
	// DefaultMaxSteps is the default cap on the number of nodes handed to
	// a state during one Construct.
	DefaultMaxSteps = 10000
)

// ThresholdFunc picks the threshold of the child created at position
// side (0 or 1) under parent.
type ThresholdFunc func(s Sampler, parent *tree.DecisionNode, side int) float64

// UniformThresholds returns a ThresholdFunc drawing thresholds
// uniformly from [lo, hi).
func UniformThresholds(lo, hi float64) ThresholdFunc {
	return func(s Sampler, _ *tree.DecisionNode, _ int) float64 {
		return lo + s.Float64()*(hi-lo)
	}
}

// Config controls a Builder. The zero Config is usable once
// EnsureDefaults has been called; NewBuilder does that.
//
// A probability of exactly 0 is indistinguishable from unset and is
// replaced by its default. Use NeverPrune, NeverRemove or NeverStop
// to disable a decision.
type Config struct {
	// PPrune is the chance of switching from Splitting to Pruning
	// after each node.
	PPrune float64
	// PRemove is the chance that Pruning removes a childless node.
	PRemove float64
	// PStop is the chance of switching from Pruning to Stopping after
	// each childless node.
	PStop float64

	// NeverPrune keeps the builder in Splitting. Growth then only
	// ends at MaxSteps.
	NeverPrune bool
	// NeverRemove stops Pruning from removing nodes. Pruning then
	// only decides when to switch to Stopping.
	NeverRemove bool
	// NeverStop keeps the builder in Pruning until the traversal runs
	// out of nodes.
	NeverStop bool

	// RootThreshold is the threshold of the root decision node.
	RootThreshold float64
	// Thresholds are used for the left and right child created by a
	// split when Threshold is nil.
	Thresholds [2]float64
	// Threshold, if set, picks split thresholds instead of Thresholds.
	Threshold ThresholdFunc
	// Categories label the left and right leaves added by Stopping.
	Categories [2]string

	// MaxSteps caps the number of traversal steps. Exceeding it fails
	// Construct with ErrResourceExhausted.
	MaxSteps int

	// Sampler is the source of randomness. If nil, a *rand.Rand
	// seeded with Seed is used.
	Sampler Sampler
	Seed    int64

	Logger Logger
}

// EnsureDefaults fills in zero fields with defaults and returns c.
func (c *Config) EnsureDefaults() *Config {
	if c.PPrune == 0 {
		c.PPrune = DefaultPPrune
	}
	if c.PRemove == 0 {
		c.PRemove = DefaultPRemove
	}
	if c.PStop == 0 {
		c.PStop = DefaultPStop
	}
	if c.RootThreshold == 0 {
		c.RootThreshold = 50
	}
	if c.Thresholds == [2]float64{} {
		c.Thresholds = [2]float64{25, 75}
	}
	if c.Categories == [2]string{} {
		c.Categories = [2]string{"Rosa", "Verde"}
	}
	if c.MaxSteps == 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	if c.Sampler == nil {
		c.Sampler = rand.New(rand.NewSource(c.Seed))
	}
	if c.Logger == nil {
		c.Logger = DefaultLogger{}
	}
	return c
}

// Validate returns an error if c cannot drive a growth run.
func (c *Config) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"PPrune", c.PPrune},
		{"PRemove", c.PRemove},
		{"PStop", c.PStop},
	} {
		if p.v < 0 || p.v > 1 {
			return errors.Newf("growth: %s = %v is not a probability", p.name, p.v)
		}
	}

	if c.MaxSteps < 0 {
		return errors.Newf("growth: MaxSteps = %d must be positive", c.MaxSteps)
	}

	return nil
}
