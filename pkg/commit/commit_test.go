package commit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

var errWrite = errors.New("connection reset")

type fakeWriter struct {
	mu       sync.Mutex
	written  map[string]models.ItemUpdate
	failIDs  map[string]bool
	delay    time.Duration
	inflight atomic.Int32
	peak     atomic.Int32
	batches  int
}

func newFakeWriter(failIDs ...string) *fakeWriter {
	w := &fakeWriter{written: map[string]models.ItemUpdate{}, failIDs: map[string]bool{}}
	for _, id := range failIDs {
		w.failIDs[id] = true
	}
	return w
}

func (w *fakeWriter) ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error {
	n := w.inflight.Add(1)
	defer w.inflight.Add(-1)
	for {
		p := w.peak.Load()
		if n <= p || w.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if w.delay > 0 {
		select {
		case <-time.After(w.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if w.failIDs[u.ID] {
		return errWrite
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written[u.ID] = u
	return nil
}

type batchWriter struct {
	*fakeWriter
	fail bool
}

func (b *batchWriter) ApplyItemUpdates(_ context.Context, updates []models.ItemUpdate) error {
	b.batches++
	if b.fail {
		return errWrite
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range updates {
		b.written[u.ID] = u
	}
	return nil
}

func updates(ids ...string) []models.ItemUpdate {
	out := make([]models.ItemUpdate, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.ItemUpdate{ID: id, Status: models.ItemStatusPending})
	}
	return out
}

func TestApply_AllSucceed(t *testing.T) {
	w := newFakeWriter()
	m := metrics.New()
	a, err := NewApplier(w, Config{Concurrency: 2}, m)
	require.NoError(t, err)

	applied, err := a.Apply(context.Background(), updates("a", "b", "c"))
	require.NoError(t, err)
	assert.Len(t, applied, 3)
	assert.Len(t, w.written, 3)
}

func TestApply_Empty(t *testing.T) {
	a, err := NewApplier(newFakeWriter(), Config{}, nil)
	require.NoError(t, err)

	applied, err := a.Apply(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, applied)
	assert.Empty(t, applied)
}

func TestApply_PartialFailure(t *testing.T) {
	w := newFakeWriter("b")
	a, err := NewApplier(w, Config{}, nil)
	require.NoError(t, err)

	applied, err := a.Apply(context.Background(), updates("a", "b", "c"))
	require.Error(t, err)

	var pce *PartialCommitError
	require.ErrorAs(t, err, &pce)
	assert.Equal(t, []string{"b"}, pce.FailedIDs())
	assert.ElementsMatch(t, []string{"a", "c"}, pce.Applied)
	assert.ErrorIs(t, err, errWrite)
	assert.Contains(t, err.Error(), "failed items: b")

	// Applied writes stay committed.
	require.Len(t, applied, 2)
	assert.Contains(t, w.written, "a")
	assert.Contains(t, w.written, "c")
	assert.NotContains(t, w.written, "b")
}

func TestApply_AllFail(t *testing.T) {
	w := newFakeWriter("a", "b")
	a, err := NewApplier(w, Config{}, nil)
	require.NoError(t, err)

	applied, err := a.Apply(context.Background(), updates("a", "b"))
	require.Error(t, err)
	assert.Nil(t, applied)
	assert.ErrorIs(t, err, errWrite)

	var pce *PartialCommitError
	assert.False(t, errors.As(err, &pce), "total failure is not a partial commit")

	var bfe *BatchFailedError
	require.ErrorAs(t, err, &bfe)
	assert.Equal(t, []string{"a", "b"}, bfe.FailedIDs())
	assert.Contains(t, err.Error(), "failed items: a, b")
}

func TestApply_ConcurrencyLimit(t *testing.T) {
	w := newFakeWriter()
	w.delay = 10 * time.Millisecond
	a, err := NewApplier(w, Config{Concurrency: 2}, nil)
	require.NoError(t, err)

	_, err = a.Apply(context.Background(), updates("a", "b", "c", "d", "e", "f"))
	require.NoError(t, err)
	assert.LessOrEqual(t, w.peak.Load(), int32(2))
	assert.Len(t, w.written, 6)
}

func TestApply_WriteTimeout(t *testing.T) {
	w := newFakeWriter()
	w.delay = time.Second
	a, err := NewApplier(w, Config{WriteTimeout: 5 * time.Millisecond}, nil)
	require.NoError(t, err)

	_, err = a.Apply(context.Background(), updates("a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestApply_Transactional(t *testing.T) {
	t.Run("commits the batch", func(t *testing.T) {
		w := &batchWriter{fakeWriter: newFakeWriter()}
		a, err := NewApplier(w, Config{Mode: ModeTransactional}, nil)
		require.NoError(t, err)

		applied, err := a.Apply(context.Background(), updates("a", "b"))
		require.NoError(t, err)
		assert.Len(t, applied, 2)
		assert.Equal(t, 1, w.batches)
	})

	t.Run("failure writes nothing", func(t *testing.T) {
		w := &batchWriter{fakeWriter: newFakeWriter(), fail: true}
		a, err := NewApplier(w, Config{Mode: ModeTransactional}, nil)
		require.NoError(t, err)

		applied, err := a.Apply(context.Background(), updates("a", "b"))
		require.ErrorIs(t, err, errWrite)
		assert.Nil(t, applied)
		assert.Empty(t, w.written)
	})

	t.Run("requires a batch writer", func(t *testing.T) {
		_, err := NewApplier(newFakeWriter(), Config{Mode: ModeTransactional}, nil)
		assert.Error(t, err)
	})
}

func TestNewApplier_UnknownMode(t *testing.T) {
	_, err := NewApplier(newFakeWriter(), Config{Mode: "eventual"}, nil)
	assert.Error(t, err)
}

func TestApply_RecordsMetrics(t *testing.T) {
	m := metrics.New()
	a, err := NewApplier(newFakeWriter("b"), Config{}, m)
	require.NoError(t, err)

	_, _ = a.Apply(context.Background(), updates("a", "b", "c"))

	count, err := testutil.GatherAndCount(m.Registry(), "runsheet_item_updates_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
