package handlers

import (
	"log"
	"net/http"

	"rental-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler serves the live activity feed.
type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleFeed upgrades to websocket and streams favourite and review events
// GET /ws
func (h *WSHandler) HandleFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	id := h.hub.Register(conn)
	log.Printf("feed subscriber connected: %s", id)

	defer func() {
		h.hub.Unregister(id)
		log.Printf("feed subscriber disconnected: %s", id)
	}()

	// The feed is one-way; reading only detects the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error from %s: %v", id, err)
			}
			return
		}
	}
}

// GetSubscribers GET /api/feed/subscribers
func (h *WSHandler) GetSubscribers(c *gin.Context) {
	ids := h.hub.List()
	c.JSON(http.StatusOK, gin.H{"subscribers": ids, "count": len(ids)})
}
