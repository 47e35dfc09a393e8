package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to ConnectionManager.
func (s *Server) wsHandler(c *gin.Context) error {
	if s.connManager == nil {
		return NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	// Origins are not restricted: the API has no authentication to protect.
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		// Accept has already written the HTTP error response.
		c.Abort()
		return nil
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
	return nil
}
