package services

import (
	"gorm.io/gorm"

	"hostreel_backend/internal/models"
	"hostreel_backend/internal/services/dto"
)

type DashboardService interface {
	GetPropertyDashboard(db *gorm.DB, propertyID, userID string, role models.UserRole) (*dto.PropertyDashboard, error)
}

type dashboardService struct {
	propertyService PropertyService
	videoService    VideoService
	matchingService MatchingService
}

func NewDashboardService(
	propertyService PropertyService,
	videoService VideoService,
	matchingService MatchingService,
) DashboardService {
	return &dashboardService{
		propertyService: propertyService,
		videoService:    videoService,
		matchingService: matchingService,
	}
}

func (s *dashboardService) GetPropertyDashboard(db *gorm.DB, propertyID, userID string, role models.UserRole) (*dto.PropertyDashboard, error) {
	property, err := s.propertyService.Get(db, propertyID, userID, role)
	if err != nil {
		return nil, err
	}

	library, err := s.videoService.LibrarySummary(db, propertyID)
	if err != nil {
		return nil, err
	}

	stats, err := s.matchingService.GetMatchingStats(db, propertyID, userID, role)
	if err != nil {
		return nil, err
	}

	recent, err := s.matchingService.ListTimelines(db, propertyID, userID, role, dto.Pagination{Page: 1, PageSize: 5})
	if err != nil {
		return nil, err
	}

	return &dto.PropertyDashboard{
		Property: property,
		Library:  library,
		Matching: stats,
		Recent:   recent.Items,
	}, nil
}
