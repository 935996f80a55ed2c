package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// runnerWSHandler upgrades GET /api/runners/ws to a WebSocket and hands
// the connection to the hub. Authentication is the hello frame: the hub
// closes anything that does not present a valid runner secret first.
func (s *Server) runnerWSHandler(c *echo.Context) error {
	if s.hub == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "runner transport not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Runner agents are not browsers; origin checks add nothing here.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.hub.HandleConnection(c.Request().Context(), conn)
	return nil
}
