package services

import (
	"gorm.io/gorm"

	"hostreel_backend/internal/matching"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/services/dto"
	"hostreel_backend/pkg/apperrors"
)

type TemplateService interface {
	Create(db *gorm.DB, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	Get(db *gorm.DB, templateID string) (*dto.TemplateResponse, error)
	ListActive(db *gorm.DB) ([]dto.TemplateResponse, error)
	Update(db *gorm.DB, templateID string, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	Delete(db *gorm.DB, templateID string) error
}

type templateService struct {
	templateRepo repositories.TemplateRepository
}

func NewTemplateService(templateRepo repositories.TemplateRepository) TemplateService {
	return &templateService{templateRepo: templateRepo}
}

func (s *templateService) Create(db *gorm.DB, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if err := validateClips(req.Clips); err != nil {
		return nil, err
	}

	template := &models.Template{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		IsActive:    true,
		Clips:       clipsFromInput(req.Clips),
	}
	if err := s.templateRepo.Create(db, template); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.TemplateToResponse(template), nil
}

func (s *templateService) Get(db *gorm.DB, templateID string) (*dto.TemplateResponse, error) {
	template, err := s.find(db, templateID)
	if err != nil {
		return nil, err
	}
	return dto.TemplateToResponse(template), nil
}

func (s *templateService) ListActive(db *gorm.DB) ([]dto.TemplateResponse, error) {
	templates, err := s.templateRepo.ListActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, *dto.TemplateToResponse(&templates[i]))
	}
	return responses, nil
}

func (s *templateService) Update(db *gorm.DB, templateID string, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := s.find(db, templateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if err := s.templateRepo.Update(db, template); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Clips != nil {
		if err := validateClips(req.Clips); err != nil {
			return nil, err
		}
		if err := s.templateRepo.ReplaceClips(db, templateID, clipsFromInput(req.Clips)); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Get(db, templateID)
}

func (s *templateService) Delete(db *gorm.DB, templateID string) error {
	if _, err := s.find(db, templateID); err != nil {
		return err
	}
	if err := s.templateRepo.Delete(db, templateID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *templateService) find(db *gorm.DB, templateID string) (*models.Template, error) {
	template, err := s.templateRepo.FindByID(db, templateID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.TemplateNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return template, nil
}

// validateClips rejects clip lists the matcher itself would refuse:
// duplicate orders or negative durations.
func validateClips(clips []dto.ClipInput) error {
	slots := make([]matching.Slot, 0, len(clips))
	for _, c := range clips {
		slots = append(slots, matching.Slot{
			Order:       c.ClipOrder,
			Duration:    c.Duration,
			Description: c.Description,
		})
	}
	if err := matching.ValidateInput(nil, slots); err != nil {
		return apperrors.ValidationError(err.Error())
	}
	return nil
}

func clipsFromInput(inputs []dto.ClipInput) []models.TemplateClip {
	clips := make([]models.TemplateClip, 0, len(inputs))
	for _, in := range inputs {
		clips = append(clips, models.TemplateClip{
			ClipOrder:   in.ClipOrder,
			Duration:    in.Duration,
			Description: in.Description,
		})
	}
	return clips
}
