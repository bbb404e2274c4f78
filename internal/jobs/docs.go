// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job is CarrierAssignmentJob, which sweeps the pending order
// backlog and runs the automatic carrier assignment for each order. The job
// is opt-in: it runs only when a cron schedule is configured, so deployments
// that assign orders manually through the API are unaffected.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(assignmentJob, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
