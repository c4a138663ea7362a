package parallel_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mpyw/smkit/internal/parallel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("keeps order", func(t *testing.T) {
		t.Parallel()

		items := []int{5, 1, 4, 2, 3}

		results := parallel.Map(t.Context(), items, 3, func(_ context.Context, n int) (string, error) {
			time.Sleep(time.Duration(n) * time.Millisecond)

			return strconv.Itoa(n * 10), nil
		})

		require.Len(t, results, len(items))

		for i, n := range items {
			require.NoError(t, results[i].Err)
			assert.Equal(t, strconv.Itoa(n*10), results[i].Value)
		}
	})

	t.Run("errors stay per item", func(t *testing.T) {
		t.Parallel()

		results := parallel.Map(t.Context(), []string{"ok", "bad", "ok"}, 2, func(_ context.Context, s string) (int, error) {
			if s == "bad" {
				return 0, errors.New("access denied")
			}

			return len(s), nil
		})

		assert.Equal(t, 2, results[0].Value)
		require.EqualError(t, results[1].Err, "access denied")
		assert.Equal(t, 2, results[2].Value)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		var running, peak atomic.Int32

		parallel.Map(t.Context(), make([]struct{}, 20), 4, func(context.Context, struct{}) (struct{}, error) {
			n := running.Add(1)
			defer running.Add(-1)

			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			time.Sleep(2 * time.Millisecond)

			return struct{}{}, nil
		})

		assert.LessOrEqual(t, peak.Load(), int32(4))
		assert.Positive(t, peak.Load())
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var calls atomic.Int32

		results := parallel.Map(ctx, []int{1, 2}, 0, func(context.Context, int) (int, error) {
			calls.Add(1)

			return 0, nil
		})

		assert.Zero(t, calls.Load())
		assert.ErrorIs(t, results[0].Err, context.Canceled)
		assert.ErrorIs(t, results[1].Err, context.Canceled)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, parallel.Map(t.Context(), []int(nil), 2, func(context.Context, int) (int, error) {
			return 0, nil
		}))
	})
}
