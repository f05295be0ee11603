package dto

import (
	"time"

	"hostreel_backend/internal/models"
)

type UpdateVideoDescriptionRequest struct {
	Description string   `json:"description" validate:"required,min=1"`
	Tags        []string `json:"tags" validate:"omitempty,max=30,dive,min=1,max=60"`
}

type UpdateVideoStatusRequest struct {
	Status string `json:"status" validate:"required,is-video-status"`
	Error  string `json:"error" validate:"omitempty,max=500"`
}

type VideoResponse struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	Duration     float64   `json:"duration"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// LibrarySummary is the per-property content readiness breakdown used by
// the dashboard and pre-flight checks before a matching run.
type LibrarySummary struct {
	Total      int64 `json:"total"`
	Uploaded   int64 `json:"uploaded"`
	Processing int64 `json:"processing"`
	Described  int64 `json:"described"`
	Failed     int64 `json:"failed"`
}

func VideoToResponse(v *models.Video) *VideoResponse {
	return &VideoResponse{
		ID:           v.ID,
		PropertyID:   v.PropertyID,
		OriginalName: v.OriginalName,
		MimeType:     v.MimeType,
		Size:         v.Size,
		Duration:     v.Duration,
		Status:       string(v.Status),
		Description:  v.Description,
		Tags:         v.GetTags(),
		URL:          v.URL,
		CreatedAt:    v.CreatedAt,
	}
}
