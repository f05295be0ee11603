package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hostreel_backend/internal/models"
)

type TemplateRepository interface {
	Create(db *gorm.DB, template *models.Template) error
	FindByID(db *gorm.DB, id string) (*models.Template, error)
	ListActive(db *gorm.DB) ([]models.Template, error)
	Update(db *gorm.DB, template *models.Template) error
	ReplaceClips(db *gorm.DB, templateID string, clips []models.TemplateClip) error
	Delete(db *gorm.DB, id string) error
}

type templateRepository struct{}

func NewTemplateRepository() TemplateRepository {
	return &templateRepository{}
}

func (r *templateRepository) Create(db *gorm.DB, template *models.Template) error {
	return db.Create(template).Error
}

func (r *templateRepository) FindByID(db *gorm.DB, id string) (*models.Template, error) {
	var template models.Template
	err := db.Preload("Clips", func(db *gorm.DB) *gorm.DB {
		return db.Order("clip_order ASC")
	}).First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) ListActive(db *gorm.DB) ([]models.Template, error) {
	var templates []models.Template
	err := db.Preload("Clips", func(db *gorm.DB) *gorm.DB {
		return db.Order("clip_order ASC")
	}).Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) Update(db *gorm.DB, template *models.Template) error {
	return db.Omit("Clips").Save(template).Error
}

// ReplaceClips swaps the full clip list atomically.
func (r *templateRepository) ReplaceClips(db *gorm.DB, templateID string, clips []models.TemplateClip) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TemplateClip{}, "template_id = ?", templateID).Error; err != nil {
			return err
		}
		for i := range clips {
			clips[i].TemplateID = templateID
		}
		if len(clips) == 0 {
			return nil
		}
		return tx.Create(&clips).Error
	})
}

func (r *templateRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Template{}, "id = ?", id).Error
}
