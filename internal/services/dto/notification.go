package dto

import (
	"encoding/json"
	"time"

	"hostreel_backend/internal/models"
)

type NotificationResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	IsRead    bool            `json:"is_read"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// WSEvent is the envelope pushed over a user's websocket connections.
type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NotificationToResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		IsRead:    n.IsRead,
		Payload:   json.RawMessage(n.Payload),
		CreatedAt: n.CreatedAt,
	}
}
