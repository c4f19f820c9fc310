package services

import (
	"fmt"
	"sync"
	"time"

	"nextkey_landing_go/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmissionLog writes submission outcomes to the database in the background
type SubmissionLog struct {
	db     *gorm.DB
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewSubmissionLog creates a log backed by db
func NewSubmissionLog(db *gorm.DB, logger *zap.Logger) *SubmissionLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionLog{db: db, logger: logger.Named("submission_log")}
}

// Record stores the event asynchronously to avoid blocking the request.
// Events with an unknown lead source or outcome are dropped.
func (l *SubmissionLog) Record(event models.SubmissionEvent) {
	if !event.LeadSource.IsValid() || !models.IsValidOutcome(event.Outcome) {
		l.logger.Warn("dropping malformed submission event",
			zap.String("lead_source", string(event.LeadSource)),
			zap.String("outcome", event.Outcome))
		return
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := l.db.Create(&event).Error; err != nil {
			l.logger.Error("failed to record submission event", zap.Error(err))
		}
	}()
}

// Flush waits for pending writes
func (l *SubmissionLog) Flush() {
	l.wg.Wait()
}

// OutcomeCount is one row of a submission summary
type OutcomeCount struct {
	Site       string
	LeadSource string
	Outcome    string
	Count      int64
}

// Summary counts outcomes recorded since the given time
func (l *SubmissionLog) Summary(since time.Time) ([]OutcomeCount, error) {
	var rows []OutcomeCount
	err := l.db.Model(&models.SubmissionEvent{}).
		Select("site, lead_source, outcome, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("site, lead_source, outcome").
		Order("site, lead_source, outcome").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize submissions: %w", err)
	}
	return rows, nil
}

// PurgeBefore deletes events older than cutoff and returns how many were removed
func (l *SubmissionLog) PurgeBefore(cutoff time.Time) (int64, error) {
	res := l.db.Where("created_at < ?", cutoff).Delete(&models.SubmissionEvent{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge submission events: %w", res.Error)
	}
	return res.RowsAffected, nil
}
