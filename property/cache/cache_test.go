package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_CachesValue(t *testing.T) {
	store := NewStore()
	calls := 0

	populate := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"room-101", "room-102"}, nil
	}

	first, err := GetAs(context.Background(), store, KeyRooms, populate)
	require.NoError(t, err)
	assert.Equal(t, []string{"room-101", "room-102"}, first)

	second, err := GetAs(context.Background(), store, KeyRooms, populate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second get must be served from the cache")
}

func TestGet_SingleFlight(t *testing.T) {
	store := NewStore()
	var calls atomic.Int32
	release := make(chan struct{})

	populate := func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	const concurrency = 8
	var wg sync.WaitGroup
	results := make([]int, concurrency)
	getErrs := make([]error, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], getErrs[i] = GetAs(context.Background(), store, KeyInvoices, populate)
		}(i)
	}

	// Give every goroutine a chance to reach the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent gets must share one populate")
	for i := 0; i < concurrency; i++ {
		require.NoError(t, getErrs[i])
		assert.Equal(t, 42, results[i])
	}
}

func TestClear_ForcesRepopulate(t *testing.T) {
	store := NewStore()
	calls := 0
	populate := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := GetAs(context.Background(), store, KeyInvoices, populate)
	require.NoError(t, err)

	store.Clear(KeyInvoices)

	_, err = GetAs(context.Background(), store, KeyInvoices, populate)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "get after clear must repopulate")
}

func TestClear_DuringInflightDiscardsResult(t *testing.T) {
	store := NewStore()
	var calls atomic.Int32
	release := make(chan struct{})

	slow := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "stale", nil
	}

	done := make(chan struct{})
	var inflightVal string
	var inflightErr error
	go func() {
		defer close(done)
		inflightVal, inflightErr = GetAs(context.Background(), store, KeyTenants, slow)
	}()

	time.Sleep(20 * time.Millisecond)
	store.Clear(KeyTenants)
	close(release)
	<-done

	// The waiter that started before the clear still gets its result.
	require.NoError(t, inflightErr)
	assert.Equal(t, "stale", inflightVal)

	// But the result was discarded: the next get populates afresh.
	fresh, err := GetAs(context.Background(), store, KeyTenants, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", fresh)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_PopulateFailureIsNotCached(t *testing.T) {
	store := NewStore()
	calls := 0
	boom := errors.New("connection refused")

	_, err := GetAs(context.Background(), store, KeyBuildings, func(ctx context.Context) (int, error) {
		calls++
		return 0, boom
	})
	require.ErrorIs(t, err, boom)

	// No negative caching: the next get retries and can succeed.
	v, err := GetAs(context.Background(), store, KeyBuildings, func(ctx context.Context) (int, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 2, calls)
}

func TestGet_PopulateFailurePropagatesToAllWaiters(t *testing.T) {
	store := NewStore()
	release := make(chan struct{})
	boom := errors.New("boom")

	populate := func(ctx context.Context) (int, error) {
		<-release
		return 0, boom
	}

	const concurrency = 4
	var wg sync.WaitGroup
	errs := make([]error, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = GetAs(context.Background(), store, KeyUtilityReadings, populate)
		}(i)
	}
	time.Sleep(30 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < concurrency; i++ {
		assert.ErrorIs(t, errs[i], boom)
	}
}

func TestGet_TTLExpiry(t *testing.T) {
	store := NewStore(WithTTL(30 * time.Millisecond))
	calls := 0
	populate := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := GetAs(context.Background(), store, KeyRooms, populate)
	require.NoError(t, err)
	_, err = GetAs(context.Background(), store, KeyRooms, populate)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	time.Sleep(50 * time.Millisecond)

	_, err = GetAs(context.Background(), store, KeyRooms, populate)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired entry must repopulate")
}

func TestClearAll(t *testing.T) {
	store := NewStore()
	calls := 0
	populate := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	for _, key := range []string{KeyRooms, KeyBuildings, KeyInvoices} {
		_, err := GetAs(context.Background(), store, key, populate)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)

	store.ClearAll()

	for _, key := range []string{KeyRooms, KeyBuildings, KeyInvoices} {
		_, err := GetAs(context.Background(), store, key, populate)
		require.NoError(t, err)
	}
	assert.Equal(t, 6, calls)
}
