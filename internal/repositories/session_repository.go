package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hostreel_backend/internal/models"
)

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByToken(db *gorm.DB, token string) (*models.Session, error)
	Touch(db *gorm.DB, session *models.Session) error
	DeleteByToken(db *gorm.DB, token string) error
	DeleteByUser(db *gorm.DB, userID string) error
	DeleteExpired(db *gorm.DB, now time.Time) (int64, error)
}

type sessionRepository struct{}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *sessionRepository) FindByToken(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	if err := db.First(&session, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Touch persists a sliding-expiry renewal.
func (r *sessionRepository) Touch(db *gorm.DB, session *models.Session) error {
	return db.Model(session).Updates(map[string]interface{}{
		"expires_at":   session.ExpiresAt,
		"last_used_at": session.LastUsedAt,
	}).Error
}

func (r *sessionRepository) DeleteByToken(db *gorm.DB, token string) error {
	return db.Delete(&models.Session{}, "token = ?", token).Error
}

// DeleteByUser implements logout-everywhere.
func (r *sessionRepository) DeleteByUser(db *gorm.DB, userID string) error {
	return db.Delete(&models.Session{}, "user_id = ?", userID).Error
}

func (r *sessionRepository) DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Delete(&models.Session{}, "expires_at < ?", now)
	return result.RowsAffected, result.Error
}
