// Package jobs provides scheduled background tasks for the sales order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reporting required for order operations.
//
// # Available Jobs
//
// 1. StaleDraftReportJob - Runs every minute to report draft orders older than the configured age
// 2. DeliveryDueReportJob - Runs hourly to report confirmed orders whose delivery date has arrived
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the database and reporting threshold
//	jobManager := jobs.NewJobManager(db, 48*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log query failures and keep running on their schedule
// - Failed job starts will stop any already running jobs
package jobs
