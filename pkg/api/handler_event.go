package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/runsheet/pkg/ical"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// listEventsHandler handles GET /api/v1/events.
func (s *Server) listEventsHandler(c *gin.Context) error {
	filters := models.EventFilters{Status: models.EventStatus(c.Query("status"))}
	list, err := s.eventService.ListEvents(c.Request.Context(), filters)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, list)
	return nil
}

// createEventHandler handles POST /api/v1/events.
func (s *Server) createEventHandler(c *gin.Context) error {
	var req models.CreateEventRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	event, err := s.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, event)
	return nil
}

// getEventHandler handles GET /api/v1/events/:id.
func (s *Server) getEventHandler(c *gin.Context) error {
	event, err := s.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, event)
	return nil
}

// updateEventHandler handles PUT /api/v1/events/:id.
func (s *Server) updateEventHandler(c *gin.Context) error {
	var req models.UpdateEventRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	event, err := s.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, event)
	return nil
}

// deleteEventHandler handles DELETE /api/v1/events/:id.
func (s *Server) deleteEventHandler(c *gin.Context) error {
	if err := s.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

// setEventStatusHandler handles PATCH /api/v1/events/:id/status.
func (s *Server) setEventStatusHandler(c *gin.Context) error {
	var req models.EventStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	event, err := s.eventService.SetEventStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, event)
	return nil
}

// calendarHandler handles GET /api/v1/events/:id/calendar.ics.
func (s *Server) calendarHandler(c *gin.Context) error {
	ctx := c.Request.Context()
	event, err := s.eventService.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	items, err := s.timelineService.ListItems(ctx, event.ID)
	if err != nil {
		return err
	}

	c.Header("Content-Disposition", `attachment; filename="`+event.ID+`.ics"`)
	c.Header("Content-Type", ical.ContentType)
	c.Status(http.StatusOK)
	return ical.Write(c.Writer, event, items, event.UpdatedAt)
}
