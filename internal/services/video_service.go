package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostreel_backend/internal/config"
	"hostreel_backend/internal/logger"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/services/dto"
	"hostreel_backend/internal/storage"
	"hostreel_backend/pkg/apperrors"
)

type VideoService interface {
	Upload(ctx context.Context, db *gorm.DB, propertyID, userID string, role models.UserRole,
		filename, contentType string, size int64, r io.Reader) (*dto.VideoResponse, error)
	Get(db *gorm.DB, videoID, userID string, role models.UserRole) (*dto.VideoResponse, error)
	List(db *gorm.DB, propertyID, userID string, role models.UserRole, page dto.Pagination) (*dto.PagedResult[dto.VideoResponse], error)
	SetDescription(db *gorm.DB, videoID string, req *dto.UpdateVideoDescriptionRequest) (*dto.VideoResponse, error)
	UpdateStatus(db *gorm.DB, videoID string, req *dto.UpdateVideoStatusRequest) (*dto.VideoResponse, error)
	Delete(ctx context.Context, db *gorm.DB, videoID, userID string, role models.UserRole) error
	LibrarySummary(db *gorm.DB, propertyID string) (*dto.LibrarySummary, error)
}

type videoService struct {
	videoRepo       repositories.VideoRepository
	propertyService PropertyService
	notifications   NotificationService
	store           storage.Storage
}

func NewVideoService(
	videoRepo repositories.VideoRepository,
	propertyService PropertyService,
	notifications NotificationService,
	store storage.Storage,
) VideoService {
	return &videoService{
		videoRepo:       videoRepo,
		propertyService: propertyService,
		notifications:   notifications,
		store:           store,
	}
}

func (s *videoService) Upload(ctx context.Context, db *gorm.DB, propertyID, userID string, role models.UserRole,
	filename, contentType string, size int64, r io.Reader) (*dto.VideoResponse, error) {

	if _, err := s.propertyService.Authorize(db, propertyID, userID, role); err != nil {
		return nil, err
	}

	cfg := config.GetConfig()
	if cfg.Upload.MaxSize > 0 && size > cfg.Upload.MaxSize {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("File exceeds maximum size of %d bytes", cfg.Upload.MaxSize))
	}
	if len(cfg.Upload.AllowedTypes) > 0 && !allowedType(cfg.Upload.AllowedTypes, contentType) {
		return nil, apperrors.NewBadRequestError("Unsupported file type: " + contentType)
	}

	path := fmt.Sprintf("videos/%s/%s%s", propertyID, uuid.NewString(), filepath.Ext(filename))
	if err := s.store.Save(ctx, path, r, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		url = ""
	}

	video := &models.Video{
		PropertyID:   propertyID,
		UploaderID:   userID,
		Path:         path,
		OriginalName: filename,
		MimeType:     contentType,
		Size:         size,
		Status:       models.VideoStatusUploaded,
		URL:          url,
	}
	if err := s.videoRepo.Create(db, video); err != nil {
		_ = s.store.Delete(ctx, path)
		return nil, apperrors.InternalError(err)
	}

	return dto.VideoToResponse(video), nil
}

func (s *videoService) Get(db *gorm.DB, videoID, userID string, role models.UserRole) (*dto.VideoResponse, error) {
	video, err := s.findAuthorized(db, videoID, userID, role)
	if err != nil {
		return nil, err
	}
	return dto.VideoToResponse(video), nil
}

func (s *videoService) List(db *gorm.DB, propertyID, userID string, role models.UserRole, page dto.Pagination) (*dto.PagedResult[dto.VideoResponse], error) {
	if _, err := s.propertyService.Authorize(db, propertyID, userID, role); err != nil {
		return nil, err
	}

	page.Normalize()
	videos, total, err := s.videoRepo.ListByProperty(db, propertyID, page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		items = append(items, *dto.VideoToResponse(&videos[i]))
	}
	return &dto.PagedResult[dto.VideoResponse]{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// SetDescription is the callback endpoint of the external captioning
// pipeline. The video becomes matchable and its owner is notified.
func (s *videoService) SetDescription(db *gorm.DB, videoID string, req *dto.UpdateVideoDescriptionRequest) (*dto.VideoResponse, error) {
	video, err := s.videoRepo.FindByID(db, videoID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.VideoNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	video.Description = req.Description
	video.SetTags(req.Tags)
	video.Status = models.VideoStatusDescribed
	if err := s.videoRepo.Update(db, video); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.notifications.Notify(db, video.UploaderID, models.NotificationTypeVideoDescribed,
		"Video described", video.OriginalName+" is ready for matching",
		map[string]string{"video_id": video.ID, "property_id": video.PropertyID}); err != nil {
		logger.WithError(err).Warn("video described notification failed", "video_id", video.ID)
	}

	return dto.VideoToResponse(video), nil
}

func (s *videoService) UpdateStatus(db *gorm.DB, videoID string, req *dto.UpdateVideoStatusRequest) (*dto.VideoResponse, error) {
	video, err := s.videoRepo.FindByID(db, videoID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.VideoNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	video.Status = models.VideoStatus(req.Status)
	if err := s.videoRepo.Update(db, video); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.VideoToResponse(video), nil
}

func (s *videoService) Delete(ctx context.Context, db *gorm.DB, videoID, userID string, role models.UserRole) error {
	video, err := s.findAuthorized(db, videoID, userID, role)
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(db, videoID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.store.Delete(ctx, video.Path); err != nil {
		logger.WithError(err).Warn("stored file cleanup failed", "video_id", videoID, "path", video.Path)
	}
	return nil
}

func (s *videoService) LibrarySummary(db *gorm.DB, propertyID string) (*dto.LibrarySummary, error) {
	counts, err := s.videoRepo.CountByStatus(db, propertyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summary := &dto.LibrarySummary{
		Uploaded:   counts[models.VideoStatusUploaded],
		Processing: counts[models.VideoStatusProcessing],
		Described:  counts[models.VideoStatusDescribed],
		Failed:     counts[models.VideoStatusFailed],
	}
	summary.Total = summary.Uploaded + summary.Processing + summary.Described + summary.Failed
	return summary, nil
}

func (s *videoService) findAuthorized(db *gorm.DB, videoID, userID string, role models.UserRole) (*models.Video, error) {
	video, err := s.videoRepo.FindByID(db, videoID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.VideoNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.propertyService.Authorize(db, video.PropertyID, userID, role); err != nil {
		return nil, err
	}
	return video, nil
}

func allowedType(allowed []string, contentType string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
