package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hostreel_backend/internal/logger"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/services/dto"
	"hostreel_backend/pkg/apperrors"
)

// Pusher delivers an event to all live websocket connections of a user.
// The websocket manager implements it.
type Pusher interface {
	PushToUser(userID string, data []byte)
}

type NotificationService interface {
	Notify(db *gorm.DB, userID string, kind models.NotificationType, title, body string, payload interface{}) error
	List(db *gorm.DB, userID string, page dto.Pagination) (*dto.PagedResult[dto.NotificationResponse], error)
	UnreadCount(db *gorm.DB, userID string) (int64, error)
	MarkRead(db *gorm.DB, notificationID, userID string) error
	MarkAllRead(db *gorm.DB, userID string) error
	SetPusher(p Pusher)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	pusher           Pusher
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// SetPusher is called once at startup, after the websocket manager exists.
func (s *notificationService) SetPusher(p Pusher) {
	s.pusher = p
}

// Notify persists the notification, then fans it out over websocket.
// Push failures are logged, never surfaced: the DB row is the source of
// truth and the client catches up on reconnect.
func (s *notificationService) Notify(db *gorm.DB, userID string, kind models.NotificationType, title, body string, payload interface{}) error {
	notification := &models.Notification{
		UserID: userID,
		Type:   kind,
		Title:  title,
		Body:   body,
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return apperrors.InternalError(err)
		}
		notification.Payload = datatypes.JSON(data)
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		return apperrors.InternalError(err)
	}

	if s.pusher != nil {
		event := dto.WSEvent{Type: string(kind), Payload: dto.NotificationToResponse(notification)}
		data, err := json.Marshal(event)
		if err != nil {
			logger.WithError(err).Warn("notification push skipped", "user_id", userID)
			return nil
		}
		s.pusher.PushToUser(userID, data)
	}
	return nil
}

func (s *notificationService) List(db *gorm.DB, userID string, page dto.Pagination) (*dto.PagedResult[dto.NotificationResponse], error) {
	page.Normalize()
	notifications, total, err := s.notificationRepo.ListByUser(db, userID, page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, *dto.NotificationToResponse(&notifications[i]))
	}
	return &dto.PagedResult[dto.NotificationResponse]{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (s *notificationService) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(db *gorm.DB, notificationID, userID string) error {
	if err := s.notificationRepo.MarkRead(db, notificationID, userID); err != nil {
		if err == repositories.ErrNotFound {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(db *gorm.DB, userID string) error {
	if err := s.notificationRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
