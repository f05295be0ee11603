package dto

import (
	"time"

	"hostreel_backend/internal/models"
)

type ClipInput struct {
	ClipOrder   int     `json:"clip_order" validate:"min=0"`
	Duration    float64 `json:"duration" validate:"min=0"`
	Description string  `json:"description" validate:"required,min=1,max=1000"`
}

type CreateTemplateRequest struct {
	Name        string      `json:"name" validate:"required,min=1,max=200"`
	Category    string      `json:"category" validate:"omitempty,max=100"`
	Description string      `json:"description" validate:"omitempty,max=2000"`
	Clips       []ClipInput `json:"clips" validate:"required,min=1,dive"`
}

type UpdateTemplateRequest struct {
	Name        *string     `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string     `json:"category" validate:"omitempty,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	IsActive    *bool       `json:"is_active"`
	Clips       []ClipInput `json:"clips" validate:"omitempty,min=1,dive"`
}

type ClipResponse struct {
	ID          string  `json:"id"`
	ClipOrder   int     `json:"clip_order"`
	Duration    float64 `json:"duration"`
	Description string  `json:"description"`
}

type TemplateResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category,omitempty"`
	Description string         `json:"description,omitempty"`
	IsActive    bool           `json:"is_active"`
	Clips       []ClipResponse `json:"clips"`
	CreatedAt   time.Time      `json:"created_at"`
}

func TemplateToResponse(t *models.Template) *TemplateResponse {
	clips := make([]ClipResponse, 0, len(t.Clips))
	for _, c := range t.Clips {
		clips = append(clips, ClipResponse{
			ID:          c.ID,
			ClipOrder:   c.ClipOrder,
			Duration:    c.Duration,
			Description: c.Description,
		})
	}
	return &TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		IsActive:    t.IsActive,
		Clips:       clips,
		CreatedAt:   t.CreatedAt,
	}
}
