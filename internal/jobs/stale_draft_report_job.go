package jobs

import (
	"context"
	"log/slog"
	"time"

	"repuestos/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StaleDraftReportJob periodically reports draft orders that have been
// sitting unconfirmed longer than the configured age. Drafts are cheap to
// create and easy to forget; the report keeps them visible to operations
// without auto-expiring anything.
type StaleDraftReportJob struct {
	db       *gorm.DB
	staleAge time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleDraftReportJob creates a job that reports drafts older than staleAge.
func NewStaleDraftReportJob(db *gorm.DB, staleAge time.Duration, logger *slog.Logger) *StaleDraftReportJob {
	return &StaleDraftReportJob{
		db:       db,
		staleAge: staleAge,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_draft_report_job"),
	}
}

// Start begins the stale draft report job to run every minute.
func (j *StaleDraftReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		var count int64
		cutoff := time.Now().Add(-j.staleAge)
		err := j.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM orders
			WHERE status = ? AND order_date < ?
		`, order.Draft, cutoff).Scan(&count).Error
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft report job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Stale draft orders awaiting confirmation",
				"count", count, "olderThan", j.staleAge.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft report job started (running every minute)")
	return nil
}

// Stop stops the stale draft report job.
func (j *StaleDraftReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale draft report job stopped")
}
