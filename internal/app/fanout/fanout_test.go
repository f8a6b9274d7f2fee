package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/app/fanout"
	"github.com/jsamuelsen11/project-tracker/internal/domain/result"
)

func values[R any](t *testing.T, results []result.Result[R]) []R {
	t.Helper()
	out := make([]R, len(results))
	for i, r := range results {
		v, err := r.Get()
		require.NoError(t, err, "results[%d]", i)
		out[i] = v
	}
	return out
}

func TestRun_Results(t *testing.T) {
	t.Parallel()

	double := func(_ context.Context, n int) (int, error) { return n * 2, nil }

	tests := []struct {
		name    string
		workers int
		items   []int
		want    []int
	}{
		{name: "empty", workers: 4, items: []int{}, want: []int{}},
		{name: "fewer workers than items", workers: 2, items: []int{1, 2, 3, 4, 5}, want: []int{2, 4, 6, 8, 10}},
		{name: "more workers than items", workers: 100, items: []int{1, 2}, want: []int{2, 4}},
		{name: "zero workers means one", workers: 0, items: []int{3, 1, 2}, want: []int{6, 2, 4}},
		{name: "negative workers means one", workers: -3, items: []int{7}, want: []int{14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results := fanout.Run(context.Background(), tt.workers, tt.items, double)
			require.NotNil(t, results)
			assert.Equal(t, tt.want, values(t, results))
		})
	}
}

func TestRun_OrderSurvivesUnevenLatency(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{40 * time.Millisecond, 5 * time.Millisecond, 20 * time.Millisecond, 0}

	results := fanout.Run(context.Background(), len(delays), delays,
		func(_ context.Context, d time.Duration) (time.Duration, error) {
			time.Sleep(d)
			return d, nil
		})

	assert.Equal(t, delays, values(t, results))
}

func TestRun_NeverExceedsWorkerBound(t *testing.T) {
	t.Parallel()

	const workers = 3

	var inFlight, peak atomic.Int32
	items := make([]int, 12)

	fanout.Run(context.Background(), workers, items, func(_ context.Context, _ int) (struct{}, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.Positive(t, peak.Load())
}

func TestRun_FailuresStayWithTheirItem(t *testing.T) {
	t.Parallel()

	errRejected := errors.New("receiver rejected")

	results := fanout.Run(context.Background(), 3, []string{"a", "b", "c"},
		func(_ context.Context, s string) (string, error) {
			switch s {
			case "b":
				return "", errRejected
			case "c":
				panic("receiver exploded")
			}
			return s + "!", nil
		})

	require.Len(t, results, 3)
	assert.Equal(t, "a!", results[0].ValueOr(""))
	assert.ErrorIs(t, results[1].Err(), errRejected)
	require.Error(t, results[2].Err())
	assert.Contains(t, results[2].Err().Error(), "receiver exploded")
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 2, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	assert.Zero(t, calls.Load())
	for i, r := range results {
		assert.ErrorIs(t, r.Err(), context.Canceled, "results[%d]", i)
	}
}

func TestRun_CancelledWhileQueued(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		// The first caller holds the only worker while the rest queue.
		if calls.Add(1) == 1 {
			cancel()
			time.Sleep(20 * time.Millisecond)
		}
		return n, nil
	})

	var ran, cancelled int
	for _, r := range results {
		switch {
		case r.IsOk():
			ran++
		case errors.Is(r.Err(), context.Canceled):
			cancelled++
		}
	}
	assert.Equal(t, 1, ran, "only the running call completes")
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRun_RunningCallSeesCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := fanout.Run(ctx, 1, []int{1}, func(ctx context.Context, _ int) (int, error) {
		cancel()
		return 0, ctx.Err()
	})

	assert.ErrorIs(t, results[0].Err(), context.Canceled)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	errA := errors.New("endpoint a")
	errB := errors.New("endpoint b")

	failed := fanout.Run(context.Background(), 3, []error{nil, errA, errB},
		func(_ context.Context, e error) (struct{}, error) { return struct{}{}, e })

	err := fanout.Errors(failed)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	ok := fanout.Run(context.Background(), 1, []int{1}, func(_ context.Context, n int) (int, error) { return n, nil })
	assert.NoError(t, fanout.Errors(ok))
	assert.NoError(t, fanout.Errors[int](nil))
}
