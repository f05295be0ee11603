package services

import (
	"hostreel_backend/internal/email"
	"hostreel_backend/internal/storage"
)

// ServiceContainer holds every service the handlers and workers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	PropertyService     PropertyService
	VideoService        VideoService
	TemplateService     TemplateService
	MatchingService     MatchingService
	NotificationService NotificationService
	DashboardService    DashboardService
	EmailService        email.Provider
	Storage             storage.Storage
}
