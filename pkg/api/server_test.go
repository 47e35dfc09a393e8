package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/services"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// flakyStore rejects item updates for the ids in failIDs.
type flakyStore struct {
	*store.MemoryStore
	failIDs map[string]bool
}

func (s *flakyStore) ApplyItemUpdate(ctx context.Context, u models.ItemUpdate) error {
	if s.failIDs[u.ID] {
		return errors.New("write failed")
	}
	return s.MemoryStore.ApplyItemUpdate(ctx, u)
}

type testServer struct {
	*Server
	store   *flakyStore
	manager *events.ConnectionManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	st := &flakyStore{MemoryStore: store.NewMemoryStore(), failIDs: map[string]bool{}}
	m := metrics.New()
	applier, err := commit.NewApplier(st, commit.Config{}, m)
	require.NoError(t, err)

	var liveSvc *services.LiveService
	manager := events.NewConnectionManager(events.SnapshotFunc(func(ctx context.Context, eventID string) (*models.LiveBoard, error) {
		return liveSvc.Snapshot(ctx, eventID)
	}), 5*time.Second)
	pub := events.NewLocalPublisher(manager)
	liveSvc = services.NewLiveService(st, applier, pub, m)

	s := NewServer(
		services.NewEventService(st, pub, m),
		services.NewTimelineService(st, pub),
		liveSvc,
	)
	s.SetConnectionManager(manager)
	s.SetMetrics(m)
	s.SetStoreDriver(string(store.DriverMemory))
	return &testServer{Server: s, store: st, manager: manager}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// seedLiveEvent creates a live event whose items start 30 minutes apart,
// the first one at start.
func (s *testServer) seedLiveEvent(t *testing.T, start time.Time, n int) (*models.Event, []*models.TimelineItem) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/events", models.CreateEventRequest{Name: "Gala", Date: "2026-10-19"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	event := decode[models.Event](t, rec)

	items := make([]*models.TimelineItem, 0, n)
	for i := range n {
		rec = s.do(t, http.MethodPost, "/api/v1/events/"+event.ID+"/items", models.CreateTimelineItemRequest{
			Title:     "Item",
			StartTime: start.Add(time.Duration(i) * 30 * time.Minute),
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		item := decode[models.TimelineItem](t, rec)
		items = append(items, &item)
	}

	rec = s.do(t, http.MethodPatch, "/api/v1/events/"+event.ID+"/status", models.EventStatusRequest{Status: models.EventStatusLive})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return &event, items
}

func TestServer_EventCRUD(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/events", models.CreateEventRequest{Name: "Gala", Date: "2026-10-19"})
	require.Equal(t, http.StatusCreated, rec.Code)
	event := decode[models.Event](t, rec)
	assert.Equal(t, models.EventStatusDraft, event.Status)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	rec = s.do(t, http.MethodGet, "/api/v1/events/"+event.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	name := "Gala Night"
	rec = s.do(t, http.MethodPut, "/api/v1/events/"+event.ID, models.UpdateEventRequest{Name: &name})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gala Night", decode[models.Event](t, rec).Name)

	rec = s.do(t, http.MethodGet, "/api/v1/events?status=draft", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Event](t, rec), 1)

	rec = s.do(t, http.MethodDelete, "/api/v1/events/"+event.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/events/"+event.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", decode[map[string]any](t, rec)["error"])
}

func TestServer_Errors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/events", models.CreateEventRequest{Date: "2026-10-19"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	raw := httptest.NewRecorder()
	s.Handler().ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
	assert.Contains(t, raw.Body.String(), "invalid request body")

	rec = s.do(t, http.MethodPost, "/api/v1/events", models.CreateEventRequest{Name: "Draft", Date: "2026-10-19"})
	event := decode[models.Event](t, rec)
	rec = s.do(t, http.MethodPatch, "/api/v1/events/"+event.ID+"/status", models.EventStatusRequest{Status: models.EventStatusPaused})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/events/"+event.ID+"/live/complete", nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "draft events take no live actions")

	rec = s.do(t, http.MethodPost, "/api/v1/timeline-items/jump-to", models.JumpToRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/timeline-items/jump-to", models.JumpToRequest{ItemID: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_LiveFlow(t *testing.T) {
	s := newTestServer(t)
	start := time.Now().UTC().Add(-10 * time.Minute).Truncate(time.Second)
	event, items := s.seedLiveEvent(t, start, 3)

	rec := s.do(t, http.MethodPost, "/api/v1/timeline-items/jump-to", models.JumpToRequest{ItemID: items[1].ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[LiveActionResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, models.LiveActionJump, resp.Action)
	require.Len(t, resp.Updates, 3)
	assert.Equal(t, models.ItemStatusSkipped, resp.Updates[0].Status)

	rec = s.do(t, http.MethodGet, "/api/v1/events/"+event.ID+"/live", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[models.LiveBoard](t, rec)
	require.NotNil(t, board.Current)
	assert.Equal(t, items[1].ID, board.Current.ID)
	require.Len(t, board.Completed, 1, "skipped items are shown as completed")
	assert.Equal(t, items[0].ID, board.Completed[0].ID)

	rec = s.do(t, http.MethodPost, "/api/v1/events/"+event.ID+"/live/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got, err := s.store.GetItem(context.Background(), items[2].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusInProgress, got.Status)

	rec = s.do(t, http.MethodPost, "/api/v1/events/"+event.ID+"/live/skip", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/v1/timeline-items/"+items[2].ID+"/status", models.ItemStatusRequest{Status: models.ItemStatusPending})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/v1/events/"+event.ID+"/status", models.EventStatusRequest{Status: models.EventStatusCompleted})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.EventStatusCompleted, decode[models.Event](t, rec).Status)
}

func TestServer_PartialCommit(t *testing.T) {
	s := newTestServer(t)
	_, items := s.seedLiveEvent(t, time.Now().UTC().Add(-time.Hour), 3)
	s.store.failIDs[items[1].ID] = true

	rec := s.do(t, http.MethodPost, "/api/v1/timeline-items/jump-to", models.JumpToRequest{ItemID: items[2].ID})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[HTTPError](t, rec)
	assert.Equal(t, "timeline partially updated", body.Message)
	assert.Equal(t, []string{items[1].ID}, body.FailedItemIDs)

	got, err := s.store.GetItem(context.Background(), items[2].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusInProgress, got.Status, "applied writes are kept")
}

func TestServer_ItemRoutes(t *testing.T) {
	s := newTestServer(t)
	event, items := s.seedLiveEvent(t, time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC), 2)

	rec := s.do(t, http.MethodPut, "/api/v1/events/"+event.ID+"/items/order", models.ReorderItemsRequest{
		ItemIDs: []string{items[1].ID, items[0].ID},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/events/"+event.ID+"/items", nil)
	list := decode[[]models.TimelineItem](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, items[1].ID, list[0].ID)

	title := "Speeches"
	rec = s.do(t, http.MethodPut, "/api/v1/timeline-items/"+items[0].ID, models.UpdateTimelineItemRequest{Title: &title})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/timeline-items/"+items[0].ID, nil)
	assert.Equal(t, "Speeches", decode[models.TimelineItem](t, rec).Title)

	rec = s.do(t, http.MethodGet, "/api/v1/events/"+event.ID+"/calendar.ics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, rec.Body.String(), "SUMMARY:Speeches")

	rec = s.do(t, http.MethodDelete, "/api/v1/timeline-items/"+items[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/v1/timeline-items/"+items[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	assert.Equal(t, healthStatusHealthy, health.Status)
	assert.Equal(t, "memory", health.Store)
	assert.Nil(t, health.Database)

	s.seedLiveEvent(t, time.Now().UTC(), 1)
	rec = s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `runsheet_event_transitions_total{result="success",status="live"} 1`)
}

func TestServer_WebSocket(t *testing.T) {
	s := newTestServer(t)
	event, items := s.seedLiveEvent(t, time.Now().UTC(), 2)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/api/v1/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	read := func() map[string]any {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var msg map[string]any
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}

	assert.Equal(t, "connection.established", read()["type"])

	sub, err := json.Marshal(events.ClientMessage{Action: "subscribe", Channel: events.EventChannel(event.ID)})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, sub))
	assert.Equal(t, "subscription.confirmed", read()["type"])
	snapshot := read()
	assert.Equal(t, events.EventTypeTimelineSnapshot, snapshot["type"])

	rec := s.do(t, http.MethodPost, "/api/v1/timeline-items/jump-to", models.JumpToRequest{ItemID: items[1].ID})
	require.Equal(t, http.StatusOK, rec.Code)

	msg := read()
	assert.Equal(t, events.EventTypeTimelineUpdated, msg["type"])
	assert.Equal(t, "jump", msg["action"])
	assert.Equal(t, items[1].ID, msg["item_id"])
}

func TestServer_WebSocketDisabled(t *testing.T) {
	s := newTestServer(t)
	s.connManager = nil
	rec := s.do(t, http.MethodGet, "/api/v1/ws", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
