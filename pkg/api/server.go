// Package api serves the runsheet HTTP API with gin.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/runsheet/pkg/database"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server

	eventService    *services.EventService
	timelineService *services.TimelineService
	liveService     *services.LiveService

	connManager *events.ConnectionManager // nil disables /api/v1/ws
	metrics     *metrics.Metrics
	dbClient    *database.Client // nil for the memory and disk stores
	storeDriver string

	readHeaderTimeout time.Duration
}

// NewServer creates the API server and registers its routes.
func NewServer(eventSvc *services.EventService, timelineSvc *services.TimelineService, liveSvc *services.LiveService) *Server {
	s := &Server{
		eventService:    eventSvc,
		timelineService: timelineSvc,
		liveService:     liveSvc,

		readHeaderTimeout: 10 * time.Second,
	}
	return s
}

// SetConnectionManager enables WebSocket notifications.
func (s *Server) SetConnectionManager(m *events.ConnectionManager) { s.connManager = m }

// SetMetrics exposes m on /metrics.
func (s *Server) SetMetrics(m *metrics.Metrics) { s.metrics = m }

// SetDatabase adds the database to the health check.
func (s *Server) SetDatabase(c *database.Client) { s.dbClient = c }

// SetStoreDriver records the store driver reported by /health.
func (s *Server) SetStoreDriver(driver string) { s.storeDriver = driver }

// SetReadHeaderTimeout overrides how long a client may take to send request
// headers. Whole-request deadlines are not set because WebSocket
// connections outlive them.
func (s *Server) SetReadHeaderTimeout(d time.Duration) {
	if d > 0 {
		s.readHeaderTimeout = d
	}
}

// Handler returns the router, building it on first use.
func (s *Server) Handler() http.Handler {
	if s.router == nil {
		s.router = s.setupRoutes()
	}
	return s.router
}

func (s *Server) setupRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders(), requestLogger())

	r.GET("/health", handle(s.healthHandler))
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/ws", handle(s.wsHandler))

	ev := v1.Group("/events")
	ev.GET("", handle(s.listEventsHandler))
	ev.POST("", handle(s.createEventHandler))
	ev.GET("/:id", handle(s.getEventHandler))
	ev.PUT("/:id", handle(s.updateEventHandler))
	ev.DELETE("/:id", handle(s.deleteEventHandler))
	ev.PATCH("/:id/status", handle(s.setEventStatusHandler))
	ev.GET("/:id/items", handle(s.listItemsHandler))
	ev.POST("/:id/items", handle(s.createItemHandler))
	ev.PUT("/:id/items/order", handle(s.reorderItemsHandler))
	ev.GET("/:id/live", handle(s.boardHandler))
	ev.POST("/:id/live/complete", handle(s.completeCurrentHandler))
	ev.POST("/:id/live/skip", handle(s.skipCurrentHandler))
	ev.GET("/:id/calendar.ics", handle(s.calendarHandler))

	items := v1.Group("/timeline-items")
	items.POST("/jump-to", handle(s.jumpToHandler))
	items.GET("/:id", handle(s.getItemHandler))
	items.PUT("/:id", handle(s.updateItemHandler))
	items.DELETE("/:id", handle(s.deleteItemHandler))
	items.PATCH("/:id/status", handle(s.setItemStatusHandler))

	return r
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ln)
}

// Serve serves HTTP on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}
	slog.Info("HTTP server listening", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return nil
}
