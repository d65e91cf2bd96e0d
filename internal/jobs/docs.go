// Package jobs provides scheduled background tasks for the sales service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level precision
// and log through github.com/rs/zerolog.
//
// # Available Jobs
//
// OrderStateJob re-runs the state classifier over every order that may still
// advance on its own (new, processing, complete). It picks up orders whose
// lifecycle would change after a status label was reconfigured or after data
// was corrected outside the service. The default schedule is once a minute.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reclassifyHandler, "0 * * * * *", jobMetrics, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Overlapping runs are skipped: a run that is still busy when the next tick
// arrives keeps the transaction to itself.
package jobs
