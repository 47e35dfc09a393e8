package rpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/services"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

// rejectingStore fails item updates for the ids in failIDs.
type rejectingStore struct {
	*store.MemoryStore
	failIDs map[string]bool
}

func (s *rejectingStore) ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error {
	if s.failIDs[u.ID] {
		return errors.New("write failed")
	}
	return s.MemoryStore.ApplyItemUpdate(ctx, u)
}

type testEnv struct {
	client   *LiveControlClient
	health   healthpb.HealthClient
	store    *rejectingStore
	events   *services.EventService
	timeline *services.TimelineService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := &rejectingStore{MemoryStore: store.NewMemoryStore(), failIDs: map[string]bool{}}
	applier, err := commit.NewApplier(st, commit.Config{}, nil)
	require.NoError(t, err)

	eventSvc := services.NewEventService(st, nil, nil)
	liveSvc := services.NewLiveService(st, applier, nil, nil)

	lis := bufconn.Listen(1 << 20)
	gs, _ := NewGRPCServer(NewServer(liveSvc, eventSvc))
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testEnv{
		client:   NewLiveControlClient(conn),
		health:   healthpb.NewHealthClient(conn),
		store:    st,
		events:   eventSvc,
		timeline: services.NewTimelineService(st, nil),
	}
}

// seed creates a live event with n items 30 minutes apart starting at start.
func (e *testEnv) seed(t *testing.T, start time.Time, n int) (*models.Event, []*models.TimelineItem) {
	t.Helper()
	ctx := context.Background()
	event, err := e.events.CreateEvent(ctx, models.CreateEventRequest{Name: "Launch", Date: "2026-10-19"})
	require.NoError(t, err)
	var items []*models.TimelineItem
	for i := range n {
		item, err := e.timeline.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{
			Title:     "Step",
			StartTime: start.Add(time.Duration(i) * 30 * time.Minute),
		})
		require.NoError(t, err)
		items = append(items, item)
	}
	event, err = e.events.SetEventStatus(ctx, event.ID, models.EventStatusLive)
	require.NoError(t, err)
	return event, items
}

func request(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	for _, svc := range []string{"", ServiceName} {
		resp, err := env.health.Check(ctx, &healthpb.HealthCheckRequest{Service: svc})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestLiveControl_Flow(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	event, items := env.seed(t, time.Now().UTC().Add(-15*time.Minute), 3)

	resp, err := env.client.JumpTo(ctx, request(t, map[string]any{"item_id": items[1].ID}))
	require.NoError(t, err)
	assert.Equal(t, "jump", resp.GetFields()["action"].GetStringValue())
	assert.Len(t, resp.GetFields()["updates"].GetListValue().GetValues(), 3)

	board, err := env.client.GetBoard(ctx, request(t, map[string]any{"event_id": event.ID}))
	require.NoError(t, err)
	current := board.GetFields()["current"].GetStructValue()
	require.NotNil(t, current)
	assert.Equal(t, items[1].ID, current.GetFields()["id"].GetStringValue())

	_, err = env.client.CompleteCurrent(ctx, request(t, map[string]any{"event_id": event.ID}))
	require.NoError(t, err)
	_, err = env.client.SkipCurrent(ctx, request(t, map[string]any{"event_id": event.ID}))
	require.NoError(t, err)

	got, err := env.store.GetItem(ctx, items[2].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusSkipped, got.Status)

	resp, err = env.client.SetEventStatus(ctx, request(t, map[string]any{"event_id": event.ID, "status": "paused"}))
	require.NoError(t, err)
	assert.Equal(t, "paused", resp.GetFields()["status"].GetStringValue())
}

func TestLiveControl_SetItemStatus(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	_, items := env.seed(t, time.Now().UTC().Add(time.Hour), 2)

	resp, err := env.client.SetItemStatus(ctx, request(t, map[string]any{"item_id": items[0].ID, "status": "in_progress"}))
	require.NoError(t, err)
	assert.Equal(t, "item_status", resp.GetFields()["action"].GetStringValue())

	_, err = env.client.SetItemStatus(ctx, request(t, map[string]any{"item_id": items[1].ID, "status": "in_progress"}))
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "only one item may be in progress")
}

func TestLiveControl_ErrorCodes(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	draft, err := env.events.CreateEvent(ctx, models.CreateEventRequest{Name: "Draft", Date: "2026-10-19"})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		code codes.Code
	}{
		{
			name: "missing field",
			call: func() error {
				_, err := env.client.JumpTo(ctx, request(t, map[string]any{}))
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown item",
			call: func() error {
				_, err := env.client.JumpTo(ctx, request(t, map[string]any{"item_id": "missing"}))
				return err
			},
			code: codes.NotFound,
		},
		{
			name: "live action on draft event",
			call: func() error {
				_, err := env.client.CompleteCurrent(ctx, request(t, map[string]any{"event_id": draft.ID}))
				return err
			},
			code: codes.FailedPrecondition,
		},
		{
			name: "illegal event transition",
			call: func() error {
				_, err := env.client.SetEventStatus(ctx, request(t, map[string]any{"event_id": draft.ID, "status": "completed"}))
				return err
			},
			code: codes.FailedPrecondition,
		},
		{
			name: "unknown item status",
			call: func() error {
				_, err := env.client.SetItemStatus(ctx, request(t, map[string]any{"item_id": "x", "status": "done"}))
				return err
			},
			code: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(tt.call()))
		})
	}
}

func TestLiveControl_PartialCommit(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	_, items := env.seed(t, time.Now().UTC().Add(-time.Hour), 3)
	env.store.failIDs[items[1].ID] = true

	_, err := env.client.JumpTo(ctx, request(t, map[string]any{"item_id": items[2].ID}))
	require.Error(t, err)

	st := status.Convert(err)
	assert.Equal(t, codes.Aborted, st.Code())
	assert.Contains(t, st.Message(), items[1].ID)

	require.Len(t, st.Details(), 1)
	detail, ok := st.Details()[0].(*structpb.Struct)
	require.True(t, ok)
	ids := detail.GetFields()["failed_item_ids"].GetListValue().AsSlice()
	assert.Equal(t, []any{items[1].ID}, ids)
}

func TestLiveControl_EveryWriteFailed(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	_, items := env.seed(t, time.Now().UTC().Add(-time.Hour), 2)
	env.store.failIDs[items[0].ID] = true
	env.store.failIDs[items[1].ID] = true

	_, err := env.client.JumpTo(ctx, request(t, map[string]any{"item_id": items[1].ID}))
	require.Error(t, err)

	st := status.Convert(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Contains(t, st.Message(), "timeline not updated")

	require.Len(t, st.Details(), 1)
	detail, ok := st.Details()[0].(*structpb.Struct)
	require.True(t, ok)
	ids := detail.GetFields()["failed_item_ids"].GetListValue().AsSlice()
	assert.ElementsMatch(t, []any{items[0].ID, items[1].ID}, ids)
}
