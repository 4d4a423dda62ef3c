package stream

import (
	"net/http"

	"wishlist-backend/internal/auth"

	ws "github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// Handler returns a gin handler that upgrades the connection to WebSocket
// and streams the authenticated user's notifications until the socket closes
func Handler(hub *Hub, allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		conn, err := ws.Accept(c.Writer, c.Request, &ws.AcceptOptions{
			OriginPatterns: allowedOrigins,
		})
		if err != nil {
			return
		}

		client := NewClient(hub, conn, userID)
		client.Run(c.Request.Context())
	}
}
