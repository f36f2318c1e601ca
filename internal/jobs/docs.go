// Package jobs provides scheduled background tasks for the fulfillment
// system, implemented with github.com/robfig/cron/v3.
//
// ShipmentReconciliationJob periodically repairs orders that a finalized
// batch failed to flip to shipped. Batch finalization writes the batch record
// first and each member order separately, so a crash or lost connection can
// leave stragglers behind; the job picks them up on the next run.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
