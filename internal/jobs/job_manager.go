package jobs

import (
	"fmt"

	"sales/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStateJob *OrderStateJob
}

// NewJobManager creates a job manager with all jobs of the service.
func NewJobManager(
	reclassifyHandler reclassifier,
	orderStateSchedule string,
	jobMetrics *metrics.JobMetrics,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		orderStateJob: NewOrderStateJob(reclassifyHandler, orderStateSchedule, jobMetrics, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStateJob.Start(); err != nil {
		return fmt.Errorf("failed to start order state job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStateJob.Stop()
}
