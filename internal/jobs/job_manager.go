package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleDraftReportJob  *StaleDraftReportJob
	deliveryDueReportJob *DeliveryDueReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *gorm.DB, staleDraftAge time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleDraftReportJob:  NewStaleDraftReportJob(db, staleDraftAge, logger),
		deliveryDueReportJob: NewDeliveryDueReportJob(db, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDraftReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale draft report job: %w", err)
	}

	if err := jm.deliveryDueReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleDraftReportJob.Stop()
		return fmt.Errorf("failed to start delivery due report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryDueReportJob.Stop()
	jm.staleDraftReportJob.Stop()
}
