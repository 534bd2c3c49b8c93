package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"civigo/backend/internal/config"
	"civigo/backend/internal/mapfeed"
	"civigo/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Lock down before production use.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeMapFeed upgrades the connection and registers the viewer with the
// map feed hub. RequireUser has already authenticated the session.
func (h *Handler) ServeMapFeed(c *gin.Context) {
	user := sessionUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &mapfeed.WebSocketClient{
		Hub:    h.Hub,
		UserID: user.ID,
		Conn:   conn,
		Send:   make(chan models.FeedMessage, config.FeedSendBuffer),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
