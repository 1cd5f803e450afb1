package jobs

import (
	"context"
	"log/slog"
	"time"

	"repuestos/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DeliveryDueReportJob reports confirmed orders whose promised delivery date
// has arrived or passed. The order core does not track fulfilment, so the
// report is the operational handoff point to whoever does.
type DeliveryDueReportJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDeliveryDueReportJob creates a job that reports confirmed orders due for delivery.
func NewDeliveryDueReportJob(db *gorm.DB, logger *slog.Logger) *DeliveryDueReportJob {
	return &DeliveryDueReportJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "delivery_due_report_job"),
	}
}

// Start begins the delivery due report job to run hourly.
func (j *DeliveryDueReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		var count int64
		err := j.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM orders
			WHERE status = ? AND delivery_date <= ?
		`, order.Confirmed, time.Now()).Scan(&count).Error
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery due report job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.InfoContext(ctx, "Confirmed orders due for delivery", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery due report job started (running hourly)")
	return nil
}

// Stop stops the delivery due report job.
func (j *DeliveryDueReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery due report job stopped")
}
