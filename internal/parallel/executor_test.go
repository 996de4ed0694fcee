package parallel_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/internal/parallel"
)

func TestExecute_CoversRangeOnce(t *testing.T) {
	for _, tc := range []struct {
		name            string
		workers, nitems int
	}{
		{"even", 4, 100},
		{"remainder", 3, 10},
		{"more workers than items", 8, 3},
		{"serial", 1, 17},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hits := make([]int, tc.nitems)
			var mu sync.Mutex
			var ranges int
			err := parallel.NewExecutor(tc.workers).Execute(context.Background(), tc.nitems,
				func(_ context.Context, _ int, start, end int) error {
					mu.Lock()
					ranges++
					mu.Unlock()
					for i := start; i < end; i++ {
						hits[i]++
					}

					return nil
				})
			require.NoError(t, err)
			for i, h := range hits {
				assert.Equal(t, 1, h, "index %d", i)
			}
			assert.LessOrEqual(t, ranges, tc.workers)
		})
	}
}

func TestExecute_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := parallel.NewExecutor(4).Execute(context.Background(), 40,
		func(_ context.Context, worker int, _, _ int) error {
			if worker == 2 {
				return boom
			}

			return nil
		})
	assert.ErrorIs(t, err, boom)
}

func TestNewExecutor_DefaultWorkers(t *testing.T) {
	assert.Positive(t, parallel.NewExecutor(0).Workers())
	assert.Equal(t, 3, parallel.NewExecutor(3).Workers())
	assert.NoError(t, parallel.NewExecutor(2).Execute(context.Background(), 0, nil))
}
