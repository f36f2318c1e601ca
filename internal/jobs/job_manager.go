package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	shipmentReconciliationJob *ShipmentReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reconcileHandler commands.ReconcileShipmentsCommandHandler,
	reconcileCronSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentReconciliationJob: NewShipmentReconciliationJob(reconcileHandler, reconcileCronSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentReconciliationJob.Stop()
}
