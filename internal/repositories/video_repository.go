package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hostreel_backend/internal/models"
)

type VideoRepository interface {
	Create(db *gorm.DB, video *models.Video) error
	FindByID(db *gorm.DB, id string) (*models.Video, error)
	ListByProperty(db *gorm.DB, propertyID string, page, pageSize int) ([]models.Video, int64, error)
	ListMatchable(db *gorm.DB, propertyID string, limit int) ([]models.Video, error)
	CountByStatus(db *gorm.DB, propertyID string) (map[models.VideoStatus]int64, error)
	Update(db *gorm.DB, video *models.Video) error
	Delete(db *gorm.DB, id string) error
}

type videoRepository struct{}

func NewVideoRepository() VideoRepository {
	return &videoRepository{}
}

func (r *videoRepository) Create(db *gorm.DB, video *models.Video) error {
	return db.Create(video).Error
}

func (r *videoRepository) FindByID(db *gorm.DB, id string) (*models.Video, error) {
	var video models.Video
	if err := db.First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) ListByProperty(db *gorm.DB, propertyID string, page, pageSize int) ([]models.Video, int64, error) {
	var videos []models.Video
	var total int64

	query := db.Model(&models.Video{}).Where("property_id = ?", propertyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// ListMatchable returns described videos for one matching run, in a
// stable creation order so runs over an unchanged library are
// deterministic.
func (r *videoRepository) ListMatchable(db *gorm.DB, propertyID string, limit int) ([]models.Video, error) {
	var videos []models.Video
	query := db.Where("property_id = ? AND status = ? AND description <> ''",
		propertyID, models.VideoStatusDescribed).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) CountByStatus(db *gorm.DB, propertyID string) (map[models.VideoStatus]int64, error) {
	type row struct {
		Status models.VideoStatus
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Video{}).
		Select("status, count(*) as count").
		Where("property_id = ?", propertyID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.VideoStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *videoRepository) Update(db *gorm.DB, video *models.Video) error {
	return db.Save(video).Error
}

func (r *videoRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Video{}, "id = ?", id).Error
}
