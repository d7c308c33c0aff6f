package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	inventoryReportJob *InventoryReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	boxStatsHandler queries.GetBoxStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		inventoryReportJob: NewInventoryReportJob(boxStatsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.inventoryReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start inventory report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inventoryReportJob.Stop()
}
