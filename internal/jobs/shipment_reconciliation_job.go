package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentReconciliationJob periodically flips stragglers left behind by an
// interrupted batch finalization. Each run is idempotent, so overlapping
// repairs are harmless.
type ShipmentReconciliationJob struct {
	handler  commands.ReconcileShipmentsCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShipmentReconciliationJob creates a new job for shipment reconciliation.
// The cron spec is a standard five-field expression; every five minutes is a
// sensible default.
func NewShipmentReconciliationJob(
	handler commands.ReconcileShipmentsCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *ShipmentReconciliationJob {
	if cronSpec == "" {
		cronSpec = "*/5 * * * *"
	}
	return &ShipmentReconciliationJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(),
		logger:   logger.With("component", "shipment_reconciliation_job"),
	}
}

// Start begins the reconciliation job on its configured schedule.
func (j *ShipmentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileShipmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment reconciliation job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the reconciliation job.
func (j *ShipmentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment reconciliation job stopped")
}
