package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/api"
	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/services"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

func newServer(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	applier, err := commit.NewApplier(st, commit.Config{}, nil)
	require.NoError(t, err)
	srv := api.NewServer(
		services.NewEventService(st, nil, nil),
		services.NewTimelineService(st, nil),
		services.NewLiveService(st, applier, nil, nil),
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c, err := New(ts.URL + "/")
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	_, err := New("localhost:8080")
	assert.Error(t, err)

	c, err := New("https://runsheet.example.com/", WithHTTPClient(http.DefaultClient))
	require.NoError(t, err)
	assert.Equal(t, "https://runsheet.example.com", c.baseURL)
	assert.Same(t, http.DefaultClient, c.httpClient)
}

func TestClient_RoundTrip(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	event, err := c.CreateEvent(ctx, models.CreateEventRequest{Name: "Wedding", Date: "2026-10-24"})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusDraft, event.Status)

	start := time.Now().UTC().Add(-5 * time.Minute).Truncate(time.Second)
	first, err := c.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{Title: "Ceremony", StartTime: start})
	require.NoError(t, err)
	second, err := c.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{Title: "Dinner", StartTime: start.Add(time.Hour)})
	require.NoError(t, err)

	items, err := c.ListItems(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = c.SetEventStatus(ctx, event.ID, models.EventStatusLive)
	require.NoError(t, err)

	result, err := c.JumpTo(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LiveActionJump, result.Action)
	assert.Len(t, result.Updates, 2)

	board, err := c.Board(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, board.Current)
	assert.Equal(t, second.ID, board.Current.ID)
	require.Len(t, board.Completed, 1)
	assert.Equal(t, first.ID, board.Completed[0].ID)

	_, err = c.CompleteCurrent(ctx, event.ID)
	require.NoError(t, err)
	_, err = c.SkipCurrent(ctx, event.ID)
	require.NoError(t, err, "skipping without a current item is a no-op")

	live, err := c.ListEvents(ctx, models.EventStatusLive)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, event.ID, live[0].ID)

	got, err := c.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wedding", got.Name)
}

func TestClient_Errors(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	_, err := c.GetEvent(ctx, "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	event, err := c.CreateEvent(ctx, models.CreateEventRequest{Name: "Draft", Date: "2026-10-24"})
	require.NoError(t, err)
	_, err = c.CompleteCurrent(ctx, event.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "live action")
}
