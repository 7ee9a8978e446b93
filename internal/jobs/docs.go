// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance work.
//
// # Available Jobs
//
// 1. MenuRefreshJob - Runs every minute to re-fetch the menu from the catalog
// service, keeping the local fallback snapshot warm for outages.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(catalogClient, logger)
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
// - The refresh job logs catalog outages at warn level; the stale snapshot
// keeps serving the menu until the upstream recovers.
// - Failed job starts will stop any already running jobs.
package jobs
