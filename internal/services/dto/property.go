package dto

import (
	"time"

	"hostreel_backend/internal/models"
)

type CreatePropertyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Type        string `json:"type" validate:"required,is-property-type"`
	City        string `json:"city" validate:"omitempty,max=120"`
	Address     string `json:"address" validate:"omitempty,max=300"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type UpdatePropertyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Type        *string `json:"type" validate:"omitempty,is-property-type"`
	City        *string `json:"city" validate:"omitempty,max=120"`
	Address     *string `json:"address" validate:"omitempty,max=300"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active"`
}

type PropertyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	City        string    `json:"city,omitempty"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func PropertyToResponse(p *models.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		City:        p.City,
		Address:     p.Address,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}
