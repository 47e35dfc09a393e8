// Package e2e provides end-to-end test infrastructure for the runsheet server
// running on PostgreSQL with NOTIFY/LISTEN change delivery.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/api"
	"github.com/codeready-toolchain/runsheet/pkg/client"
	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/config"
	"github.com/codeready-toolchain/runsheet/pkg/database"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/services"
	"github.com/codeready-toolchain/runsheet/pkg/store"
	testdb "github.com/codeready-toolchain/runsheet/test/database"
	"github.com/codeready-toolchain/runsheet/test/util"
)

// TestApp boots a complete runsheet instance for e2e testing.
type TestApp struct {
	Config   *config.Config
	DBClient *database.Client
	Store    *store.PostgresStore

	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	Server         *api.Server
	Client         *client.Client

	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/api/v1/ws"
}

type testAppConfig struct {
	cfg         *config.Config
	dbClient    *database.Client
	baseConnStr string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithCommitMode switches the live commit mode of the default config.
func WithCommitMode(mode commit.Mode) TestAppOption {
	return func(c *testAppConfig) {
		if c.cfg == nil {
			c.cfg = config.Default()
		}
		c.cfg.Live.CommitMode = mode
	}
}

// WithSharedDB makes the instance use a pool on a schema shared with other
// instances, so notifications published by one reach subscribers of another.
func WithSharedDB(t *testing.T, shared *testdb.SharedTestDB) TestAppOption {
	return func(c *testAppConfig) {
		c.dbClient = shared.NewClient(t)
		c.baseConnStr = shared.BaseConnString()
	}
}

// NewTestApp creates and starts a runsheet instance on a random port.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = config.Default()
	}

	// 1. Database and store
	if tc.dbClient == nil {
		tc.dbClient = testdb.NewTestClient(t)
	}
	if tc.baseConnStr == "" {
		tc.baseConnStr = util.GetBaseConnectionString(t)
	}
	st := store.NewPostgresStore(tc.dbClient.Client)

	// 2. Commit layer
	m := metrics.New()
	applier, err := commit.NewApplier(st, tc.cfg.Live.CommitConfig(), m)
	require.NoError(t, err)

	// 3. Notifications, with a dedicated pgx connection for LISTEN
	var liveSvc *services.LiveService
	connManager := events.NewConnectionManager(events.SnapshotFunc(
		func(ctx context.Context, eventID string) (*models.LiveBoard, error) {
			return liveSvc.Snapshot(ctx, eventID)
		}), 5*time.Second)
	publisher := events.NewEventPublisher(tc.dbClient.DB())
	notifyListener := events.NewNotifyListener(tc.baseConnStr, connManager)
	ctx := context.Background()
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 4. Services
	eventSvc := services.NewEventService(st, publisher, m)
	timelineSvc := services.NewTimelineService(st, publisher)
	liveSvc = services.NewLiveService(st, applier, publisher, m)

	// 5. HTTP server on a random port
	server := api.NewServer(eventSvc, timelineSvc, liveSvc)
	server.SetConnectionManager(connManager)
	server.SetMetrics(m)
	server.SetDatabase(tc.dbClient)
	server.SetStoreDriver(string(store.DriverPostgres))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.Serve(ln)
	}()

	addr := ln.Addr().String()
	baseURL := fmt.Sprintf("http://%s", addr)
	c, err := client.New(baseURL)
	require.NoError(t, err)

	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       tc.dbClient,
		Store:          st,
		EventPublisher: publisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		Server:         server,
		Client:         c,
		BaseURL:        baseURL,
		WSURL:          fmt.Sprintf("ws://%s/api/v1/ws", addr),
	}

	// The pool itself is closed by the test database cleanup.
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
	})

	return app
}

// SeedLiveEvent creates an event with n items spaced 30 minutes apart,
// starting at start, and moves it to live.
func (a *TestApp) SeedLiveEvent(t *testing.T, start time.Time, n int) (*models.Event, []*models.TimelineItem) {
	t.Helper()
	ctx := context.Background()

	event, err := a.Client.CreateEvent(ctx, models.CreateEventRequest{
		Name: "Conference day",
		Date: start.Format(time.DateOnly),
	})
	require.NoError(t, err)

	items := make([]*models.TimelineItem, 0, n)
	for i := range n {
		item, err := a.Client.CreateItem(ctx, event.ID, models.CreateTimelineItemRequest{
			Title:     fmt.Sprintf("Session %d", i+1),
			StartTime: start.Add(time.Duration(i) * 30 * time.Minute),
		})
		require.NoError(t, err)
		items = append(items, item)
	}

	event, err = a.Client.SetEventStatus(ctx, event.ID, models.EventStatusLive)
	require.NoError(t, err)
	return event, items
}
