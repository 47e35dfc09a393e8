package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

var errWriteFailed = errors.New("write failed")

// failingStore rejects item updates for selected ids.
type failingStore struct {
	*store.MemoryStore
	failIDs map[string]bool
}

func (s *failingStore) ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error {
	if s.failIDs[u.ID] {
		return errWriteFailed
	}
	return s.MemoryStore.ApplyItemUpdate(ctx, u)
}

type recordingPublisher struct {
	mu       sync.Mutex
	timeline []events.TimelineUpdatedPayload
	items    []events.ItemsChangedPayload
	statuses []events.EventStatusPayload
	err      error
}

func (p *recordingPublisher) PublishTimelineUpdated(_ context.Context, payload events.TimelineUpdatedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timeline = append(p.timeline, payload)
	return p.err
}

func (p *recordingPublisher) PublishItemsChanged(_ context.Context, payload events.ItemsChangedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, payload)
	return p.err
}

func (p *recordingPublisher) PublishEventStatus(_ context.Context, payload events.EventStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, payload)
	return p.err
}

type testEnv struct {
	store     *failingStore
	publisher *recordingPublisher
	metrics   *metrics.Metrics
	events    *EventService
	timeline  *TimelineService
	live      *LiveService
	now       time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := &failingStore{MemoryStore: store.NewMemoryStore(), failIDs: map[string]bool{}}
	pub := &recordingPublisher{}
	m := metrics.New()
	applier, err := commit.NewApplier(st, commit.Config{Mode: commit.ModeBestEffort, Concurrency: 4}, m)
	require.NoError(t, err)

	env := &testEnv{
		store:     st,
		publisher: pub,
		metrics:   m,
		events:    NewEventService(st, pub, m),
		timeline:  NewTimelineService(st, pub),
		live:      NewLiveService(st, applier, pub, m),
		now:       time.Date(2026, 10, 19, 10, 15, 0, 0, time.UTC),
	}
	clock := func() time.Time { return env.now }
	env.events.clock = clock
	env.timeline.clock = clock
	env.live.clock = clock
	return env
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time { return &t }

// seedEvent creates an event in status with one item per start time.
func (e *testEnv) seedEvent(t *testing.T, status models.EventStatus, starts ...time.Time) (*models.Event, []*models.TimelineItem) {
	t.Helper()
	ctx := context.Background()
	event, err := e.events.CreateEvent(ctx, models.CreateEventRequest{Name: "Gala", Date: "2026-10-19"})
	require.NoError(t, err)

	items := make([]*models.TimelineItem, 0, len(starts))
	for i, start := range starts {
		item, err := e.timeline.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{
			Title:     "Item " + string(rune('A'+i)),
			StartTime: start,
		})
		require.NoError(t, err)
		items = append(items, item)
	}

	if status != models.EventStatusDraft {
		require.NoError(t, e.store.SetEventStatus(ctx, event.ID, status, e.now))
		event.Status = status
	}
	return event, items
}

func (e *testEnv) item(t *testing.T, id string) *models.TimelineItem {
	t.Helper()
	item, err := e.store.GetItem(context.Background(), id)
	require.NoError(t, err)
	return item
}

// liveOps reads runsheet_live_operations_total{action,result}.
func (e *testEnv) liveOps(t *testing.T, action, result string) float64 {
	t.Helper()
	families, err := e.metrics.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "runsheet_live_operations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["action"] == action && labels["result"] == result {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
