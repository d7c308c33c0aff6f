package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// InventoryReportJob periodically logs a snapshot of the warehouse: how many
// boxes sit in each status, how many products they hold and how many products
// are still unassigned.
type InventoryReportJob struct {
	handler queries.GetBoxStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInventoryReportJob creates a job that reports inventory statistics once
// a minute.
func NewInventoryReportJob(handler queries.GetBoxStatsQueryHandler, logger *slog.Logger) *InventoryReportJob {
	return &InventoryReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "inventory_report_job"),
	}
}

// Start begins the inventory report job to run every minute.
func (j *InventoryReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetBoxStatsQuery()

		result, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Inventory report job failed", "error", err)
			return
		}

		for _, count := range result.Statuses {
			j.logger.InfoContext(ctx, "Inventory report",
				"status", count.Status.String(),
				"boxes", count.Boxes,
				"products", count.Products,
			)
		}
		j.logger.InfoContext(ctx, "Inventory report",
			"unassigned_products", result.UnassignedProducts,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Inventory report job started (running every minute)")
	return nil
}

// Stop stops the inventory report job.
func (j *InventoryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Inventory report job stopped")
}
