package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/api"
	"github.com/codeready-toolchain/runsheet/pkg/client"
	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/services"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

func init() {
	gin.SetMode(gin.TestMode)
	color.NoColor = true
	homedir.DisableCache = true
}

// startServer runs an in-memory runsheet server and isolates the home
// directory so no real ~/.runsheetctl.yaml is read.
func startServer(t *testing.T) (string, *client.Client) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RUNSHEET_SERVER", "")

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

	c, err := client.New(ts.URL)
	require.NoError(t, err)
	return ts.URL, c
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEventsCommands(t *testing.T) {
	url, c := startServer(t)

	out, err := run(t, "events", "create", "Harvest Fair", "--date", "2026-10-24", "--location", "Barn", "--server", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Harvest Fair")
	assert.Contains(t, out, "draft")

	events, err := c.ListEvents(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, events, 1)
	id := events[0].ID

	out, err = run(t, "events", "status", id, "scheduled", "--server", url)
	require.NoError(t, err)
	assert.Contains(t, out, "scheduled")

	out, err = run(t, "events", "list", "--status", "scheduled", "--server", url)
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Barn")

	_, err = run(t, "events", "status", id, "paused", "--server", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 409")

	_, err = run(t, "events", "create", "No Date", "--server", url)
	assert.Error(t, err)
}

func TestItemsAndLiveCommands(t *testing.T) {
	url, c := startServer(t)
	t.Setenv("RUNSHEET_SERVER", url)
	ctx := context.Background()

	event, err := c.CreateEvent(ctx, models.CreateEventRequest{Name: "Recital", Date: "2026-10-24"})
	require.NoError(t, err)

	out, err := run(t, "items", "add", event.ID, "Doors open", "--start", "18:30", "--category", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "18:30")
	assert.Contains(t, out, "Setup")

	_, err = run(t, "items", "add", event.ID, "Encore", "--start", "2026-10-24T21:00:00Z", "--end", "2026-10-24T21:15:00Z")
	require.NoError(t, err)

	_, err = run(t, "items", "add", event.ID, "Bad", "--start", "half past six")
	assert.ErrorContains(t, err, "invalid --start")

	out, err = run(t, "items", "list", event.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Doors open")
	assert.Contains(t, out, "21:15")

	items, err := c.ListItems(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	first, second := items[0], items[1]
	assert.Equal(t, time.Date(2026, 10, 24, 18, 30, 0, 0, time.UTC), first.StartTime.UTC())

	_, err = c.SetEventStatus(ctx, event.ID, models.EventStatusLive)
	require.NoError(t, err)

	out, err = run(t, "live", "jump", second.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "jump: 2 item(s) updated")

	out, err = run(t, "live", "board", event.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Recital")
	assert.Contains(t, out, "Encore")

	out, err = run(t, "live", "complete", event.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "complete: 1 item(s) updated")

	out, err = run(t, "live", "skip", event.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to update.")
}

func TestConfigFile(t *testing.T) {
	url, _ := startServer(t)

	path := filepath.Join(t.TempDir(), "ctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: "+url+"\n"), 0o600))

	out, err := run(t, "events", "list", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No events.")

	_, err = run(t, "events", "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[....................]   0%", progressBar(0))
	assert.Equal(t, "[##########..........]  50%", progressBar(50))
	assert.Equal(t, "[####################] 100%", progressBar(100))
}
