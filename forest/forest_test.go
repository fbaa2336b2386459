package forest

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/dtree/growth"
	"go.uber.org/goleak"
)

func seedsUpTo(n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = int64(i)
	}
	return seeds
}

func TestGrow(t *testing.T) {
	tests := []struct {
		name     string
		seeds    []int64
		inflight int
	}{
		{
			name:     "empty",
			inflight: 2,
		},
		{
			name:     "one",
			seeds:    []int64{7},
			inflight: 1,
		},
		{
			name:     "more seeds than workers",
			seeds:    seedsUpTo(50),
			inflight: 4,
		},
		{
			name:     "zero inflight",
			seeds:    seedsUpTo(3),
			inflight: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := growth.Config{Logger: growth.NoopLogger{}}
			results, err := Grow(context.Background(), cfg, tt.seeds, tt.inflight)
			require.NoError(t, err)
			require.Len(t, results, len(tt.seeds))

			for i, r := range results {
				assert.Equal(t, tt.seeds[i], r.Seed)
				require.NoError(t, r.Err)
				require.NotNil(t, r.Tree)
				assert.NoError(t, r.Tree.Validate())
				assert.Equal(t, r.Leaves, r.Stats.Leaves)
				assert.Equal(t, 2*r.Leaves-1, r.Nodes)
				assert.GreaterOrEqual(t, r.Depth, 1)

				// a forest tree is the same as one grown alone
				b, err := growth.NewBuilder(growth.Config{Seed: r.Seed, Logger: growth.NoopLogger{}})
				require.NoError(t, err)
				require.NoError(t, b.Construct())
				assert.Equal(t, b.Tree().String(), r.Tree.String())
			}

			goleak.VerifyNone(t)
		})
	}
}

func TestGrow_PerTreeErrors(t *testing.T) {
	cfg := growth.Config{
		NeverPrune: true,
		MaxSteps:   10,
		Logger:     growth.NoopLogger{},
	}

	results, err := Grow(context.Background(), cfg, seedsUpTo(5), 2)
	require.NoError(t, err)

	for _, r := range results {
		assert.True(t, errors.Is(r.Err, growth.ErrResourceExhausted), "got %v", r.Err)
		assert.Nil(t, r.Tree)
		assert.Equal(t, 10, r.Stats.Steps)
	}

	goleak.VerifyNone(t)
}

func TestGrow_SharedSampler(t *testing.T) {
	cfg := growth.Config{Sampler: growth.Sequence(0.5)}
	_, err := Grow(context.Background(), cfg, seedsUpTo(2), 2)
	assert.Error(t, err)
}

func TestGrow_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Grow(ctx, growth.Config{Logger: growth.NoopLogger{}}, seedsUpTo(10), 2)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, int64(i), r.Seed)
	}

	goleak.VerifyNone(t)
}
