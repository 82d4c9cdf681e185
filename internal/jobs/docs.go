// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileTripHandler, tripRepo, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// TripReconciliationJob runs every ten minutes and re-derives the stored
// order count and amount sum of every active trip from the orders table,
// rewriting only trips whose aggregates have drifted.
package jobs
