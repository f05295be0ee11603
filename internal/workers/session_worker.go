package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostreel_backend/internal/logger"
	"hostreel_backend/internal/repositories"
)

// SessionWorker purges expired refresh sessions so the sessions table
// does not grow without bound.
type SessionWorker struct {
	db          *gorm.DB
	sessionRepo repositories.SessionRepository
	interval    time.Duration
}

func NewSessionWorker(db *gorm.DB, sessionRepo repositories.SessionRepository) *SessionWorker {
	return &SessionWorker{
		db:          db,
		sessionRepo: sessionRepo,
		interval:    time.Hour,
	}
}

func (w *SessionWorker) Start(ctx context.Context) {
	go w.purgeLoop(ctx)
}

func (w *SessionWorker) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session worker stopped")
			return
		case <-ticker.C:
			deleted, err := w.sessionRepo.DeleteExpired(w.db, time.Now())
			if err != nil {
				logger.WorkerLog("session", "purge expired", err)
			} else if deleted > 0 {
				logger.Info("Purged expired sessions", "count", deleted)
			}
		}
	}
}
