package jobs

import (
	"context"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultOrderStateSchedule runs the job at second zero of every minute.
const DefaultOrderStateSchedule = "0 * * * * *"

const orderStateJobName = "order_state"

type reclassifier interface {
	Handle(ctx context.Context, cmd commands.ReclassifyOrdersCommand) (int, error)
}

// OrderStateJob periodically reclassifies open orders.
type OrderStateJob struct {
	handler  reclassifier
	schedule string
	metrics  *metrics.JobMetrics
	cron     *cron.Cron
	logger   zerolog.Logger
}

// NewOrderStateJob creates the job. An empty schedule falls back to
// DefaultOrderStateSchedule; jobMetrics may be nil.
func NewOrderStateJob(
	handler reclassifier,
	schedule string,
	jobMetrics *metrics.JobMetrics,
	logger zerolog.Logger,
) *OrderStateJob {
	if schedule == "" {
		schedule = DefaultOrderStateSchedule
	}

	j := &OrderStateJob{
		handler:  handler,
		schedule: schedule,
		metrics:  jobMetrics,
		logger:   logger.With().Str("component", "order_state_job").Logger(),
	}
	j.cron = cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(&j.logger))),
	)
	return j
}

// Start schedules the job. It returns an error for an invalid schedule.
func (j *OrderStateJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("Order state job started")
	return nil
}

// Run performs a single reclassification pass and returns the number of
// orders changed. Failures are logged, not returned; orders saved before or
// after a failing one still count.
func (j *OrderStateJob) Run(ctx context.Context) int {
	changed, err := j.handler.Handle(ctx, commands.NewReclassifyOrdersCommand())
	if err != nil {
		j.logger.Error().Err(err).Int("changed", changed).Msg("Order state job failed")
		j.count("error", changed)
		return changed
	}

	if changed > 0 {
		j.logger.Info().Int("changed", changed).Msg("Orders reclassified")
	} else {
		j.logger.Debug().Msg("No orders to reclassify")
	}
	j.count("ok", changed)
	return changed
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *OrderStateJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("Order state job stopped")
}

func (j *OrderStateJob) count(result string, changed int) {
	if j.metrics == nil {
		return
	}
	j.metrics.Runs.WithLabelValues(orderStateJobName, result).Inc()
	j.metrics.Changed.Add(float64(changed))
}
