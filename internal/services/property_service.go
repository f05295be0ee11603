package services

import (
	"gorm.io/gorm"

	"hostreel_backend/internal/models"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/services/dto"
	"hostreel_backend/pkg/apperrors"
)

type PropertyService interface {
	Create(db *gorm.DB, ownerID string, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	Get(db *gorm.DB, propertyID, userID string, role models.UserRole) (*dto.PropertyResponse, error)
	List(db *gorm.DB, ownerID string, page dto.Pagination) (*dto.PagedResult[dto.PropertyResponse], error)
	Update(db *gorm.DB, propertyID, userID string, role models.UserRole, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	Delete(db *gorm.DB, propertyID, userID string, role models.UserRole) error

	// Authorize loads a property and checks the caller may act on it.
	Authorize(db *gorm.DB, propertyID, userID string, role models.UserRole) (*models.Property, error)
}

type propertyService struct {
	propertyRepo repositories.PropertyRepository
}

func NewPropertyService(propertyRepo repositories.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

func (s *propertyService) Create(db *gorm.DB, ownerID string, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	property := &models.Property{
		OwnerID:     ownerID,
		Name:        req.Name,
		Type:        models.PropertyType(req.Type),
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.propertyRepo.Create(db, property); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.PropertyToResponse(property), nil
}

func (s *propertyService) Get(db *gorm.DB, propertyID, userID string, role models.UserRole) (*dto.PropertyResponse, error) {
	property, err := s.Authorize(db, propertyID, userID, role)
	if err != nil {
		return nil, err
	}
	return dto.PropertyToResponse(property), nil
}

func (s *propertyService) List(db *gorm.DB, ownerID string, page dto.Pagination) (*dto.PagedResult[dto.PropertyResponse], error) {
	page.Normalize()
	properties, total, err := s.propertyRepo.ListByOwner(db, ownerID, page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, *dto.PropertyToResponse(&properties[i]))
	}
	return &dto.PagedResult[dto.PropertyResponse]{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (s *propertyService) Update(db *gorm.DB, propertyID, userID string, role models.UserRole, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	property, err := s.Authorize(db, propertyID, userID, role)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Type != nil {
		property.Type = models.PropertyType(*req.Type)
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	}

	if err := s.propertyRepo.Update(db, property); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.PropertyToResponse(property), nil
}

func (s *propertyService) Delete(db *gorm.DB, propertyID, userID string, role models.UserRole) error {
	if _, err := s.Authorize(db, propertyID, userID, role); err != nil {
		return err
	}
	if err := s.propertyRepo.Delete(db, propertyID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *propertyService) Authorize(db *gorm.DB, propertyID, userID string, role models.UserRole) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(db, propertyID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.PropertyNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	if role != models.UserRoleAdmin && property.OwnerID != userID {
		return nil, apperrors.PropertyAccessDenied()
	}
	return property, nil
}
