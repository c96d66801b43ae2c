package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock safe for concurrent reads.
type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur = f.cur.Add(d)
}

func newTestCache(t *testing.T, ttl time.Duration) (*medicationCache, *fakeClock) {
	t.Helper()
	c, err := newMedicationCache(ttl, logger.Nop())
	require.NoError(t, err)

	clock := &fakeClock{cur: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c.now = clock.Now
	return c, clock
}

func records(names ...string) []models.MedicationRecord {
	out := make([]models.MedicationRecord, 0, len(names))
	for _, n := range names {
		out = append(out, models.NewMedicationRecord([]string{"name"}, map[string]string{"name": n}))
	}
	return out
}

// countingRefresh returns a RefreshFunc that counts its calls and yields the
// given results in order, repeating the last one.
func countingRefresh(calls *atomic.Int32, results ...func() ([]models.MedicationRecord, error)) RefreshFunc {
	return func(context.Context) ([]models.MedicationRecord, error) {
		n := int(calls.Add(1)) - 1
		if n >= len(results) {
			n = len(results) - 1
		}
		return results[n]()
	}
}

func ok(r []models.MedicationRecord) func() ([]models.MedicationRecord, error) {
	return func() ([]models.MedicationRecord, error) { return r, nil }
}

func fail(err error) func() ([]models.MedicationRecord, error) {
	return func() ([]models.MedicationRecord, error) { return nil, err }
}

// ─────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────

func TestNewMedicationCache_InvalidTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		c, err := NewMedicationCache(ttl, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidCacheTTL)
		assert.Nil(t, c)
	}
}

// ─────────────────────────────────────────────
// GetOrRefresh
// ─────────────────────────────────────────────

func TestGetOrRefresh_TTL(t *testing.T) {
	c, clock := newTestCache(t, 300*time.Second)
	var calls atomic.Int32
	first, second := records("Aspirin"), records("Ibuprofen")
	refresh := countingRefresh(&calls, ok(first), ok(second))
	ctx := context.Background()

	got, err := c.GetOrRefresh(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, int32(1), calls.Load(), "first call always fetches")

	clock.Advance(299 * time.Second)
	got, err = c.GetOrRefresh(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, int32(1), calls.Load(), "no fetch within ttl")

	clock.Advance(time.Second)
	got, err = c.GetOrRefresh(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.Equal(t, int32(2), calls.Load(), "entry aged exactly ttl is stale")
}

func TestGetOrRefresh_ReturnsSameSliceWhileFresh(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	var calls atomic.Int32
	refresh := countingRefresh(&calls, ok(records("a", "b")))

	first, err := c.GetOrRefresh(context.Background(), refresh)
	require.NoError(t, err)
	second, err := c.GetOrRefresh(context.Background(), refresh)
	require.NoError(t, err)

	require.Len(t, second, 2)
	assert.Same(t, &first[0], &second[0])
}

func TestGetOrRefresh_FailureKeepsPreviousEntry(t *testing.T) {
	c, clock := newTestCache(t, time.Minute)
	var calls atomic.Int32
	boom := errors.New("upstream down")
	good := records("Aspirin")
	refresh := countingRefresh(&calls, ok(good), fail(boom), ok(records("Later")))
	ctx := context.Background()

	_, err := c.GetOrRefresh(ctx, refresh)
	require.NoError(t, err)
	before, _ := c.Snapshot()

	clock.Advance(2 * time.Minute)
	got, err := c.GetOrRefresh(ctx, refresh)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, got)

	after, present := c.Snapshot()
	require.True(t, present)
	assert.Equal(t, before, after, "failed refresh must not touch the entry")

	got, err = c.GetOrRefresh(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, records("Later"), got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetOrRefresh_EmptyCachePropagatesUntilSuccess(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	var calls atomic.Int32
	boom := errors.New("malformed")
	refresh := countingRefresh(&calls, fail(boom), fail(boom), ok(records("Aspirin")))
	ctx := context.Background()

	for range 2 {
		_, err := c.GetOrRefresh(ctx, refresh)
		require.ErrorIs(t, err, boom)
		_, present := c.Snapshot()
		assert.False(t, present)
	}

	got, err := c.GetOrRefresh(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, records("Aspirin"), got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetOrRefresh_NilRefresh(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	_, err := c.GetOrRefresh(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilRefreshFunc)
}

func TestGetOrRefresh_ConcurrentMissesCoalesce(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	var calls atomic.Int32
	want := records("Aspirin", "Ibuprofen")

	refresh := func(context.Context) ([]models.MedicationRecord, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return want, nil
	}

	const workers = 32
	var wg sync.WaitGroup
	results := make([][]models.MedicationRecord, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = c.GetOrRefresh(context.Background(), refresh)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

// ─────────────────────────────────────────────
// Snapshot
// ─────────────────────────────────────────────

func TestSnapshot(t *testing.T) {
	c, clock := newTestCache(t, time.Minute)

	_, present := c.Snapshot()
	assert.False(t, present)

	fetchedAt := clock.Now()
	_, err := c.GetOrRefresh(context.Background(), func(context.Context) ([]models.MedicationRecord, error) {
		return records("Aspirin"), nil
	})
	require.NoError(t, err)

	entry, present := c.Snapshot()
	require.True(t, present)
	assert.Equal(t, fetchedAt, entry.FetchedAt)
	assert.Equal(t, records("Aspirin"), entry.Records)
}

func TestSnapshot_DoesNotWaitForRefresh(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = c.GetOrRefresh(context.Background(), func(context.Context) ([]models.MedicationRecord, error) {
			close(started)
			<-release
			return records("Aspirin"), nil
		})
	}()
	<-started

	done := make(chan struct{})
	go func() {
		_, _ = c.Snapshot()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Snapshot blocked on refresh in progress")
	}
	close(release)
}
