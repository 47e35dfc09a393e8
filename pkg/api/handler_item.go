package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// listItemsHandler handles GET /api/v1/events/:id/items.
func (s *Server) listItemsHandler(c *gin.Context) error {
	items, err := s.timelineService.ListItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, items)
	return nil
}

// createItemHandler handles POST /api/v1/events/:id/items.
func (s *Server) createItemHandler(c *gin.Context) error {
	var req models.CreateTimelineItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := s.timelineService.CreateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, item)
	return nil
}

// reorderItemsHandler handles PUT /api/v1/events/:id/items/order.
func (s *Server) reorderItemsHandler(c *gin.Context) error {
	var req models.ReorderItemsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	items, err := s.timelineService.ReorderItems(c.Request.Context(), c.Param("id"), req.ItemIDs)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, items)
	return nil
}

// getItemHandler handles GET /api/v1/timeline-items/:id.
func (s *Server) getItemHandler(c *gin.Context) error {
	item, err := s.timelineService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, item)
	return nil
}

// updateItemHandler handles PUT /api/v1/timeline-items/:id.
func (s *Server) updateItemHandler(c *gin.Context) error {
	var req models.UpdateTimelineItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := s.timelineService.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, item)
	return nil
}

// deleteItemHandler handles DELETE /api/v1/timeline-items/:id.
func (s *Server) deleteItemHandler(c *gin.Context) error {
	if err := s.timelineService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}
