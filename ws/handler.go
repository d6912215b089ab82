package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"portfolio_backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type WebSocketHandler struct {
	Manager *WebSocketManager
}

func NewWebSocketHandler(manager *WebSocketManager) *WebSocketHandler {
	return &WebSocketHandler{
		Manager: manager,
	}
}

// ServeWS upgrades GET /ws/dashboard and registers the connection.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "websocket upgrade failed", err)
		return
	}

	client := &Client{
		ID:      uuid.NewString(),
		Conn:    conn,
		Send:    make(chan any, sendBuffer),
		Manager: h.Manager,
		pong:    make(chan struct{}, 1),
	}
	logger.CtxInfo(c.Request.Context(), "dashboard websocket connected", "client_id", client.ID)

	select {
	case h.Manager.register <- client:
	case <-h.Manager.done:
		conn.Close()
		return
	}

	go client.readPump()
	go client.writePump()
}
