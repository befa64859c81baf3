// Package jobs provides scheduled background tasks for the freight service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order scheduling.
//
// # Available Jobs
//
// 1. LifecycleSweepJob - Periodically advances orders through their lifecycle
// (departure, completion, resource release) and retries assignment for orders
// still waiting on resources
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, "0 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule uses six-field cron expressions (with seconds). The
// default "0 * * * * *" runs the sweep once a minute, which bounds how late a
// departure or completion can be observed.
//
// # Error Handling
//
// Fleet or container-pool exhaustion during assignment retries is an expected
// business outcome and is not logged as an error; only persistence and
// infrastructure failures are.
package jobs
