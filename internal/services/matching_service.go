package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hostreel_backend/internal/config"
	"hostreel_backend/internal/email"
	"hostreel_backend/internal/logger"
	"hostreel_backend/internal/matching"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/queue"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/services/dto"
	"hostreel_backend/pkg/apperrors"
)

type MatchingService interface {
	// PreviewMatch runs the engine over caller-supplied inputs. Pure, no
	// persistence.
	PreviewMatch(req *dto.PreviewMatchRequest) (*dto.MatchPreviewResponse, error)

	// GenerateTimeline runs a full matching pass for a property against a
	// template, persists the result and hands it to the renderer.
	GenerateTimeline(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.GenerateTimelineRequest) (*dto.TimelineResponse, error)

	GetTimeline(db *gorm.DB, timelineID, userID string, role models.UserRole) (*dto.TimelineResponse, error)
	ListTimelines(db *gorm.DB, propertyID, userID string, role models.UserRole, page dto.Pagination) (*dto.PagedResult[dto.TimelineResponse], error)
	GetMatchingStats(db *gorm.DB, propertyID, userID string, role models.UserRole) (*dto.MatchingStatsResponse, error)

	// HandleRenderResult finalizes a timeline when the renderer reports
	// back. Called from the render worker.
	HandleRenderResult(db *gorm.DB, result *queue.RenderResult) error
}

type matchingService struct {
	videoRepo       repositories.VideoRepository
	templateRepo    repositories.TemplateRepository
	timelineRepo    repositories.TimelineRepository
	userRepo        repositories.UserRepository
	propertyService PropertyService
	notifications   NotificationService
	renderQueue     *queue.RenderQueue
	mailer          email.Provider
}

func NewMatchingService(
	videoRepo repositories.VideoRepository,
	templateRepo repositories.TemplateRepository,
	timelineRepo repositories.TimelineRepository,
	userRepo repositories.UserRepository,
	propertyService PropertyService,
	notifications NotificationService,
	renderQueue *queue.RenderQueue,
	mailer email.Provider,
) MatchingService {
	return &matchingService{
		videoRepo:       videoRepo,
		templateRepo:    templateRepo,
		timelineRepo:    timelineRepo,
		userRepo:        userRepo,
		propertyService: propertyService,
		notifications:   notifications,
		renderQueue:     renderQueue,
		mailer:          mailer,
	}
}

func (s *matchingService) PreviewMatch(req *dto.PreviewMatchRequest) (*dto.MatchPreviewResponse, error) {
	candidates := make([]matching.Candidate, 0, len(req.Candidates))
	for _, c := range req.Candidates {
		candidates = append(candidates, matching.Candidate{ID: c.ID, Description: c.Description})
	}
	slots := make([]matching.Slot, 0, len(req.Slots))
	for _, sl := range req.Slots {
		slots = append(slots, matching.Slot{Order: sl.Order, Duration: sl.Duration, Description: sl.Description})
	}

	if err := matching.ValidateInput(candidates, slots); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	return dto.ResultToPreview(matching.Match(candidates, slots)), nil
}

func (s *matchingService) GenerateTimeline(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.GenerateTimelineRequest) (*dto.TimelineResponse, error) {
	property, err := s.propertyService.Authorize(db, req.PropertyID, userID, role)
	if err != nil {
		return nil, err
	}

	template, err := s.templateRepo.FindByID(db, req.TemplateID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.TemplateNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	if len(template.Clips) == 0 {
		return nil, apperrors.TemplateHasNoClips()
	}

	maxCandidates := config.GetConfig().Matching.MaxCandidates
	videos, err := s.videoRepo.ListMatchable(db, req.PropertyID, maxCandidates)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(videos) == 0 {
		return nil, apperrors.InsufficientContentLibrary()
	}

	candidates := make([]matching.Candidate, 0, len(videos))
	videosByID := make(map[string]*models.Video, len(videos))
	for i := range videos {
		candidates = append(candidates, matching.Candidate{
			ID:          videos[i].ID,
			Description: videos[i].Description,
		})
		videosByID[videos[i].ID] = &videos[i]
	}

	slots := make([]matching.Slot, 0, len(template.Clips))
	for _, clip := range template.Clips {
		slots = append(slots, matching.Slot{
			Order:       clip.ClipOrder,
			Duration:    clip.Duration,
			Description: clip.Description,
		})
	}

	if err := matching.ValidateInput(candidates, slots); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}
	result := matching.Match(candidates, slots)

	timeline := &models.Timeline{
		PropertyID:         req.PropertyID,
		TemplateID:         req.TemplateID,
		RequestedBy:        userID,
		Status:             models.TimelineStatusQueued,
		AverageScore:       result.Statistics.AverageScore,
		MinScore:           result.Statistics.MinScore,
		MaxScore:           result.Statistics.MaxScore,
		HighQualityCount:   result.Statistics.HighQualityCount,
		MediumQualityCount: result.Statistics.MediumQualityCount,
		LowQualityCount:    result.Statistics.LowQualityCount,
		FallbackMode:       result.Statistics.FallbackMode,
	}
	for _, a := range result.Assignments {
		timeline.Entries = append(timeline.Entries, models.TimelineEntry{
			SlotOrder:  a.SlotOrder,
			VideoID:    a.CandidateID,
			Confidence: a.Confidence,
			Quality:    a.Quality,
		})
	}

	if err := s.timelineRepo.Create(db, timeline); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.enqueueRender(ctx, timeline, videosByID); err != nil {
		// The timeline survives; the requeue worker retries stuck runs.
		logger.WithError(err).Error("render enqueue failed", "timeline_id", timeline.ID)
	}

	if result.Statistics.FallbackMode {
		s.notifyLowConfidence(db, property, userID, timeline)
	}

	return dto.TimelineToResponse(timeline), nil
}

func (s *matchingService) GetTimeline(db *gorm.DB, timelineID, userID string, role models.UserRole) (*dto.TimelineResponse, error) {
	timeline, err := s.findAuthorized(db, timelineID, userID, role)
	if err != nil {
		return nil, err
	}
	return dto.TimelineToResponse(timeline), nil
}

func (s *matchingService) ListTimelines(db *gorm.DB, propertyID, userID string, role models.UserRole, page dto.Pagination) (*dto.PagedResult[dto.TimelineResponse], error) {
	if _, err := s.propertyService.Authorize(db, propertyID, userID, role); err != nil {
		return nil, err
	}

	page.Normalize()
	timelines, total, err := s.timelineRepo.ListByProperty(db, propertyID, page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.TimelineResponse, 0, len(timelines))
	for i := range timelines {
		items = append(items, *dto.TimelineToResponse(&timelines[i]))
	}
	return &dto.PagedResult[dto.TimelineResponse]{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (s *matchingService) GetMatchingStats(db *gorm.DB, propertyID, userID string, role models.UserRole) (*dto.MatchingStatsResponse, error) {
	if _, err := s.propertyService.Authorize(db, propertyID, userID, role); err != nil {
		return nil, err
	}

	agg, err := s.timelineRepo.AggregateStats(db, propertyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.AggregateToStats(agg), nil
}

func (s *matchingService) HandleRenderResult(db *gorm.DB, result *queue.RenderResult) error {
	timeline, err := s.timelineRepo.FindByID(db, result.TimelineID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return apperrors.TimelineNotFound()
		}
		return apperrors.InternalError(err)
	}

	status := models.TimelineStatusReady
	kind := models.NotificationTypeTimelineReady
	title := "Timeline ready"
	body := "Your video timeline has been rendered"
	if !result.Success {
		status = models.TimelineStatusFailed
		kind = models.NotificationTypeTimelineFailed
		title = "Timeline failed"
		body = "Rendering failed: " + result.Error
	}

	if err := s.timelineRepo.UpdateStatus(db, timeline.ID, status); err != nil {
		return apperrors.InternalError(err)
	}

	if timeline.RequestedBy != "" {
		payload := map[string]string{"timeline_id": timeline.ID, "property_id": timeline.PropertyID}
		if result.OutputPath != "" {
			payload["output_path"] = result.OutputPath
		}
		if err := s.notifications.Notify(db, timeline.RequestedBy, kind, title, body, payload); err != nil {
			logger.WithError(err).Warn("render result notification failed", "timeline_id", timeline.ID)
		}
		if result.Success {
			s.emailTimelineReady(db, timeline)
		}
	}
	return nil
}

func (s *matchingService) enqueueRender(ctx context.Context, timeline *models.Timeline, videosByID map[string]*models.Video) error {
	job := &queue.RenderJob{
		TimelineID: timeline.ID,
		PropertyID: timeline.PropertyID,
		TemplateID: timeline.TemplateID,
	}
	for _, entry := range timeline.Entries {
		clip := queue.RenderJobClip{SlotOrder: entry.SlotOrder}
		if entry.VideoID != nil {
			if video, ok := videosByID[*entry.VideoID]; ok {
				clip.VideoPath = video.Path
				clip.Duration = video.Duration
			}
		}
		job.Clips = append(job.Clips, clip)
	}
	return s.renderQueue.Enqueue(ctx, job)
}

func (s *matchingService) notifyLowConfidence(db *gorm.DB, property *models.Property, userID string, timeline *models.Timeline) {
	err := s.notifications.Notify(db, userID, models.NotificationTypeLowConfidence,
		"Low confidence match",
		fmt.Sprintf("The timeline for %s was built in fallback mode, consider adding more described videos", property.Name),
		map[string]string{"timeline_id": timeline.ID, "property_id": property.ID})
	if err != nil {
		logger.WithError(err).Warn("low confidence notification failed", "timeline_id", timeline.ID)
	}

	if s.mailer == nil {
		return
	}
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return
	}
	if err := s.mailer.Send(email.LowConfidenceEmail(user.Email, property.Name)); err != nil {
		logger.WithError(err).Warn("low confidence email failed", "user_id", userID)
	}
}

func (s *matchingService) emailTimelineReady(db *gorm.DB, timeline *models.Timeline) {
	if s.mailer == nil {
		return
	}
	user, err := s.userRepo.FindByID(db, timeline.RequestedBy)
	if err != nil {
		return
	}
	property, err := s.propertyService.Authorize(db, timeline.PropertyID, timeline.RequestedBy, models.UserRoleAdmin)
	if err != nil {
		return
	}
	templateName := timeline.TemplateID
	if template, err := s.templateRepo.FindByID(db, timeline.TemplateID); err == nil {
		templateName = template.Name
	}
	if err := s.mailer.Send(email.TimelineReadyEmail(user.Email, property.Name, templateName)); err != nil {
		logger.WithError(err).Warn("timeline ready email failed", "timeline_id", timeline.ID)
	}
}

func (s *matchingService) findAuthorized(db *gorm.DB, timelineID, userID string, role models.UserRole) (*models.Timeline, error) {
	timeline, err := s.timelineRepo.FindByID(db, timelineID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.TimelineNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.propertyService.Authorize(db, timeline.PropertyID, userID, role); err != nil {
		return nil, err
	}
	return timeline, nil
}
