package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hostreel_backend/internal/models"
)

type PropertyRepository interface {
	Create(db *gorm.DB, property *models.Property) error
	FindByID(db *gorm.DB, id string) (*models.Property, error)
	ListByOwner(db *gorm.DB, ownerID string, page, pageSize int) ([]models.Property, int64, error)
	Update(db *gorm.DB, property *models.Property) error
	Delete(db *gorm.DB, id string) error
}

type propertyRepository struct{}

func NewPropertyRepository() PropertyRepository {
	return &propertyRepository{}
}

func (r *propertyRepository) Create(db *gorm.DB, property *models.Property) error {
	return db.Create(property).Error
}

func (r *propertyRepository) FindByID(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	if err := db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) ListByOwner(db *gorm.DB, ownerID string, page, pageSize int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	query := db.Model(&models.Property{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *propertyRepository) Update(db *gorm.DB, property *models.Property) error {
	return db.Save(property).Error
}

func (r *propertyRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Property{}, "id = ?", id).Error
}
