package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostreel_backend/internal/logger"
	"hostreel_backend/internal/queue"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/services"
)

const stuckQueuedAfter = 15 * time.Minute

// RenderWorker bridges the redis render boundary: it consumes renderer
// results and re-enqueues timelines the renderer never picked up. The
// queue itself is not durable, so the requeue loop is what makes stuck
// runs eventually complete.
type RenderWorker struct {
	db              *gorm.DB
	renderQueue     *queue.RenderQueue
	timelineRepo    repositories.TimelineRepository
	videoRepo       repositories.VideoRepository
	matchingService services.MatchingService
	requeueInterval time.Duration
}

func NewRenderWorker(
	db *gorm.DB,
	renderQueue *queue.RenderQueue,
	timelineRepo repositories.TimelineRepository,
	videoRepo repositories.VideoRepository,
	matchingService services.MatchingService,
) *RenderWorker {
	return &RenderWorker{
		db:              db,
		renderQueue:     renderQueue,
		timelineRepo:    timelineRepo,
		videoRepo:       videoRepo,
		matchingService: matchingService,
		requeueInterval: 5 * time.Minute,
	}
}

func (w *RenderWorker) Start(ctx context.Context) {
	go w.consumeResults(ctx)
	go w.requeueLoop(ctx)
}

func (w *RenderWorker) consumeResults(ctx context.Context) {
	err := w.renderQueue.SubscribeResults(ctx,
		func(result *queue.RenderResult) {
			if err := w.matchingService.HandleRenderResult(w.db, result); err != nil {
				logger.WorkerLog("render", "handle result", err)
			} else {
				logger.Info("Render result processed", "timeline_id", result.TimelineID, "success", result.Success)
			}
		},
		func(err error) {
			logger.WorkerLog("render", "subscribe", err)
		},
	)
	if err != nil && ctx.Err() == nil {
		logger.WorkerLog("render", "subscription ended", err)
	}
}

func (w *RenderWorker) requeueLoop(ctx context.Context) {
	ticker := time.NewTicker(w.requeueInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Render worker stopped")
			return
		case <-ticker.C:
			w.requeueStuck(ctx)
		}
	}
}

func (w *RenderWorker) requeueStuck(ctx context.Context) {
	timelines, err := w.timelineRepo.ListStuckQueued(w.db, time.Now().Add(-stuckQueuedAfter))
	if err != nil {
		logger.WorkerLog("render", "list stuck timelines", err)
		return
	}

	for i := range timelines {
		timeline := &timelines[i]

		job := &queue.RenderJob{
			TimelineID: timeline.ID,
			PropertyID: timeline.PropertyID,
			TemplateID: timeline.TemplateID,
		}
		for _, entry := range timeline.Entries {
			clip := queue.RenderJobClip{SlotOrder: entry.SlotOrder}
			if entry.VideoID != nil {
				if video, err := w.videoRepo.FindByID(w.db, *entry.VideoID); err == nil {
					clip.VideoPath = video.Path
					clip.Duration = video.Duration
				}
			}
			job.Clips = append(job.Clips, clip)
		}

		if err := w.renderQueue.Enqueue(ctx, job); err != nil {
			logger.WorkerLog("render", "requeue", err)
			continue
		}
		logger.Info("Requeued stuck timeline", "timeline_id", timeline.ID)
	}
}
