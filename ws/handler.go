package ws

import (
	"github.com/gin-gonic/gin"

	"hostreel_backend/pkg/apperrors"
)

type WebSocketHandler struct {
	Manager *Manager
}

func NewWebSocketHandler(manager *Manager) *WebSocketHandler {
	return &WebSocketHandler{Manager: manager}
}

// ServeWS expects AuthMiddleware to have set userID.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	userIDVal, exists := c.Get("userID")
	userID, _ := userIDVal.(string)
	if !exists || userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	ServeWS(h.Manager, c.Writer, c.Request, userID)
}
