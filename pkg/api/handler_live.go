package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// boardHandler handles GET /api/v1/events/:id/live.
func (s *Server) boardHandler(c *gin.Context) error {
	board, err := s.liveService.Board(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, board)
	return nil
}

// jumpToHandler handles POST /api/v1/timeline-items/jump-to.
func (s *Server) jumpToHandler(c *gin.Context) error {
	var req models.JumpToRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	return s.liveResponse(c)(s.liveService.JumpTo(c.Request.Context(), req.ItemID))
}

// completeCurrentHandler handles POST /api/v1/events/:id/live/complete.
func (s *Server) completeCurrentHandler(c *gin.Context) error {
	return s.liveResponse(c)(s.liveService.CompleteCurrent(c.Request.Context(), c.Param("id")))
}

// skipCurrentHandler handles POST /api/v1/events/:id/live/skip.
func (s *Server) skipCurrentHandler(c *gin.Context) error {
	return s.liveResponse(c)(s.liveService.SkipCurrent(c.Request.Context(), c.Param("id")))
}

// setItemStatusHandler handles PATCH /api/v1/timeline-items/:id/status.
func (s *Server) setItemStatusHandler(c *gin.Context) error {
	var req models.ItemStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	return s.liveResponse(c)(s.liveService.SetItemStatus(c.Request.Context(), c.Param("id"), req.Status))
}

// liveResponse writes a live action outcome. A partial commit is reported
// as a failure even though some updates were applied.
func (s *Server) liveResponse(c *gin.Context) func(*models.LiveResult, error) error {
	return func(result *models.LiveResult, err error) error {
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, LiveActionResponse{Success: true, LiveResult: result})
		return nil
	}
}
