package fanout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmptyIssuesNoLookups(t *testing.T) {
	var calls atomic.Int32
	outcomes := Resolve(context.Background(), nil, 0, func(ctx context.Context, id string) (string, error) {
		calls.Add(1)
		return id, nil
	})

	assert.Empty(t, outcomes)
	assert.NotNil(t, outcomes)
	assert.Equal(t, int32(0), calls.Load())
}

func TestResolveCompletesAfterEveryLookup(t *testing.T) {
	for _, n := range []int{1, 2, 7, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("recipe-%d", i)
			}

			var completed atomic.Int32
			outcomes := Resolve(context.Background(), ids, 0, func(ctx context.Context, id string) (int, error) {
				time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)
				completed.Add(1)
				return len(id), nil
			})

			assert.Equal(t, int32(n), completed.Load())
			assert.Len(t, outcomes, n)
		})
	}
}

func TestResolveKeepsInputOrder(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	// later ids finish first
	delays := map[string]time.Duration{"a": 25, "b": 20, "c": 15, "d": 10, "e": 5}

	outcomes := Resolve(context.Background(), ids, 0, func(ctx context.Context, id string) (string, error) {
		time.Sleep(delays[id] * time.Millisecond)
		return "recipe " + id, nil
	})

	require.Len(t, outcomes, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, outcomes[i].ID)
		assert.Equal(t, "recipe "+id, outcomes[i].Value)
		assert.NoError(t, outcomes[i].Err)
	}
}

func TestResolveSurfacesPartialFailures(t *testing.T) {
	errMissing := errors.New("missing")
	ids := []string{"1", "2", "3", "4"}

	outcomes := Resolve(context.Background(), ids, 2, func(ctx context.Context, id string) (string, error) {
		if id == "2" || id == "4" {
			return "", errMissing
		}
		return "recipe " + id, nil
	})

	assert.Equal(t, []string{"recipe 1", "recipe 3"}, Values(outcomes))

	failed := Failures(outcomes)
	require.Len(t, failed, 2)
	assert.Equal(t, "2", failed[0].ID)
	assert.Equal(t, "4", failed[1].ID)
	assert.ErrorIs(t, failed[0].Err, errMissing)
}

func TestResolveAllFailedIsNotAnError(t *testing.T) {
	outcomes := Resolve(context.Background(), []string{"x", "y"}, 0, func(ctx context.Context, id string) (string, error) {
		return "", errors.New("boom")
	})

	assert.Empty(t, Values(outcomes))
	assert.Len(t, Failures(outcomes), 2)
}

func TestResolveRespectsLimit(t *testing.T) {
	const limit = 3
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprint(i)
	}

	var inFlight, peak atomic.Int32
	Resolve(context.Background(), ids, limit, func(ctx context.Context, id string) (string, error) {
		cur := inFlight.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)
		return id, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Greater(t, peak.Load(), int32(0))
}

func TestResolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	outcomes := Resolve(ctx, []string{"a", "b"}, 1, func(ctx context.Context, id string) (string, error) {
		calls.Add(1)
		return id, nil
	})

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestResolveEachIDLookedUpOnce(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	var mu sync.Mutex
	seen := map[string]int{}

	Resolve(context.Background(), ids, 0, func(ctx context.Context, id string) (struct{}, error) {
		mu.Lock()
		seen[id]++
		mu.Unlock()
		return struct{}{}, nil
	})

	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, seen)
}
