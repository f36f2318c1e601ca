package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/blobstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	blobStore  ports.BlobStore
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		blobStore:  blobstore.NewGormBlobStore(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmItemsCommandHandler() commands.ConfirmItemsCommandHandler {
	return commands.NewConfirmItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitPackingEvidenceCommandHandler() commands.SubmitPackingEvidenceCommandHandler {
	return commands.NewSubmitPackingEvidenceCommandHandler(c.orderUoWFactory(), c.blobStore)
}

func (c *CompositionRoot) CreateRecordPackCheckCommandHandler() commands.RecordPackCheckCommandHandler {
	return commands.NewRecordPackCheckCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResumeOrCreateBatchCommandHandler() commands.ResumeOrCreateBatchCommandHandler {
	return commands.NewResumeOrCreateBatchCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderToBatchCommandHandler() commands.AddOrderToBatchCommandHandler {
	return commands.NewAddOrderToBatchCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderFromBatchCommandHandler() commands.RemoveOrderFromBatchCommandHandler {
	return commands.NewRemoveOrderFromBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeBatchCommandHandler() commands.FinalizeBatchCommandHandler {
	return commands.NewFinalizeBatchCommandHandler(
		c.batchUoWFactory(), c.orderUoWFactory(), c.blobStore, c.logger)
}

func (c *CompositionRoot) CreateVerifyShipmentCommandHandler() commands.VerifyShipmentCommandHandler {
	return commands.NewVerifyShipmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVerifyShipmentsCommandHandler() commands.VerifyShipmentsCommandHandler {
	return commands.NewVerifyShipmentsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOverrideOrderCommandHandler() commands.OverrideOrderCommandHandler {
	return commands.NewOverrideOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateReconcileShipmentsCommandHandler() commands.ReconcileShipmentsCommandHandler {
	return commands.NewReconcileShipmentsCommandHandler(
		c.batchUoWFactory(), c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentBatchQueryHandler() queries.GetShipmentBatchQueryHandler {
	return queries.NewGetShipmentBatchQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddItemCommandHandler(),
		c.CreateRemoveItemCommandHandler(),
		c.CreateConfirmItemsCommandHandler(),
		c.CreateSubmitPackingEvidenceCommandHandler(),
		c.CreateRecordPackCheckCommandHandler(),
		c.CreateResumeOrCreateBatchCommandHandler(),
		c.CreateAddOrderToBatchCommandHandler(),
		c.CreateRemoveOrderFromBatchCommandHandler(),
		c.CreateFinalizeBatchCommandHandler(),
		c.CreateVerifyShipmentCommandHandler(),
		c.CreateVerifyShipmentsCommandHandler(),
		c.CreateOverrideOrderCommandHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetShipmentBatchQueryHandler(),
		c.CreateGetDashboardSummaryQueryHandler(),
		c.blobStore,
	)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileShipmentsCommandHandler(), c.configs.ReconcileCronSpec, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
