package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hostreel_backend/internal/models"
)

type TimelineRepository interface {
	Create(db *gorm.DB, timeline *models.Timeline) error
	FindByID(db *gorm.DB, id string) (*models.Timeline, error)
	ListByProperty(db *gorm.DB, propertyID string, page, pageSize int) ([]models.Timeline, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.TimelineStatus) error
	ListStuckQueued(db *gorm.DB, olderThan time.Time) ([]models.Timeline, error)
	AggregateStats(db *gorm.DB, propertyID string) (*TimelineAggregate, error)
}

// TimelineAggregate is the per-property roll-up of past matching runs.
type TimelineAggregate struct {
	TotalRuns     int64
	ReadyRuns     int64
	FallbackRuns  int64
	AverageScore  float64
	HighQuality   int64
	MediumQuality int64
	LowQuality    int64
}

type timelineRepository struct{}

func NewTimelineRepository() TimelineRepository {
	return &timelineRepository{}
}

func (r *timelineRepository) Create(db *gorm.DB, timeline *models.Timeline) error {
	return db.Create(timeline).Error
}

func (r *timelineRepository) FindByID(db *gorm.DB, id string) (*models.Timeline, error) {
	var timeline models.Timeline
	err := db.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("slot_order ASC")
	}).First(&timeline, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &timeline, nil
}

func (r *timelineRepository) ListByProperty(db *gorm.DB, propertyID string, page, pageSize int) ([]models.Timeline, int64, error) {
	var timelines []models.Timeline
	var total int64

	query := db.Model(&models.Timeline{}).Where("property_id = ?", propertyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&timelines).Error
	if err != nil {
		return nil, 0, err
	}
	return timelines, total, nil
}

func (r *timelineRepository) UpdateStatus(db *gorm.DB, id string, status models.TimelineStatus) error {
	return db.Model(&models.Timeline{}).Where("id = ?", id).
		Update("status", status).Error
}

// ListStuckQueued finds timelines the renderer never picked up.
func (r *timelineRepository) ListStuckQueued(db *gorm.DB, olderThan time.Time) ([]models.Timeline, error) {
	var timelines []models.Timeline
	err := db.Preload("Entries").
		Where("status = ? AND updated_at < ?", models.TimelineStatusQueued, olderThan).
		Find(&timelines).Error
	if err != nil {
		return nil, err
	}
	return timelines, nil
}

func (r *timelineRepository) AggregateStats(db *gorm.DB, propertyID string) (*TimelineAggregate, error) {
	agg := &TimelineAggregate{}

	base := db.Model(&models.Timeline{}).Where("property_id = ?", propertyID)
	if err := base.Session(&gorm.Session{}).Count(&agg.TotalRuns).Error; err != nil {
		return nil, err
	}
	if agg.TotalRuns == 0 {
		return agg, nil
	}

	if err := base.Session(&gorm.Session{}).Where("status = ?", models.TimelineStatusReady).
		Count(&agg.ReadyRuns).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("fallback_mode = ?", true).
		Count(&agg.FallbackRuns).Error; err != nil {
		return nil, err
	}

	type sums struct {
		AvgScore float64
		High     int64
		Medium   int64
		Low      int64
	}
	var s sums
	err := db.Model(&models.Timeline{}).
		Select("COALESCE(AVG(average_score), 0) as avg_score, "+
			"COALESCE(SUM(high_quality_count), 0) as high, "+
			"COALESCE(SUM(medium_quality_count), 0) as medium, "+
			"COALESCE(SUM(low_quality_count), 0) as low").
		Where("property_id = ?", propertyID).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}

	agg.AverageScore = s.AvgScore
	agg.HighQuality = s.High
	agg.MediumQuality = s.Medium
	agg.LowQuality = s.Low
	return agg, nil
}
