package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"hostreel_backend/internal/models"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-property-type", validatePropertyType)
	mustRegister("is-video-status", validateVideoStatus)
	mustRegister("is-timeline-status", validateTimelineStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' covers empties
	}
	switch models.UserRole(value) {
	case models.UserRoleOwner, models.UserRoleManager, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validatePropertyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PropertyType(value) {
	case models.PropertyTypeHotel, models.PropertyTypeRestaurant, models.PropertyTypeCafe, models.PropertyTypeBar:
		return true
	default:
		return false
	}
}

func validateVideoStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.VideoStatus(value) {
	case models.VideoStatusUploaded, models.VideoStatusProcessing, models.VideoStatusDescribed, models.VideoStatusFailed:
		return true
	default:
		return false
	}
}

func validateTimelineStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.TimelineStatus(value) {
	case models.TimelineStatusDraft, models.TimelineStatusQueued, models.TimelineStatusRendering,
		models.TimelineStatusReady, models.TimelineStatusFailed:
		return true
	default:
		return false
	}
}
