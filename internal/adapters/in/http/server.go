// Package http exposes the fulfillment use cases over a REST API. Handlers
// translate between JSON payloads and commands; all domain decisions stay in
// the application layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	addItemHandler               commands.AddItemCommandHandler
	removeItemHandler            commands.RemoveItemCommandHandler
	confirmItemsHandler          commands.ConfirmItemsCommandHandler
	submitPackingEvidenceHandler commands.SubmitPackingEvidenceCommandHandler
	recordPackCheckHandler       commands.RecordPackCheckCommandHandler
	resumeOrCreateBatchHandler   commands.ResumeOrCreateBatchCommandHandler
	addOrderToBatchHandler       commands.AddOrderToBatchCommandHandler
	removeOrderFromBatchHandler  commands.RemoveOrderFromBatchCommandHandler
	finalizeBatchHandler         commands.FinalizeBatchCommandHandler
	verifyShipmentHandler        commands.VerifyShipmentCommandHandler
	verifyShipmentsHandler       commands.VerifyShipmentsCommandHandler
	overrideOrderHandler         commands.OverrideOrderCommandHandler

	// Query handlers
	getOrdersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	getShipmentBatchHandler    queries.GetShipmentBatchQueryHandler
	getDashboardSummaryHandler queries.GetDashboardSummaryQueryHandler

	blobStore ports.BlobStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	confirmItemsHandler commands.ConfirmItemsCommandHandler,
	submitPackingEvidenceHandler commands.SubmitPackingEvidenceCommandHandler,
	recordPackCheckHandler commands.RecordPackCheckCommandHandler,
	resumeOrCreateBatchHandler commands.ResumeOrCreateBatchCommandHandler,
	addOrderToBatchHandler commands.AddOrderToBatchCommandHandler,
	removeOrderFromBatchHandler commands.RemoveOrderFromBatchCommandHandler,
	finalizeBatchHandler commands.FinalizeBatchCommandHandler,
	verifyShipmentHandler commands.VerifyShipmentCommandHandler,
	verifyShipmentsHandler commands.VerifyShipmentsCommandHandler,
	overrideOrderHandler commands.OverrideOrderCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getShipmentBatchHandler queries.GetShipmentBatchQueryHandler,
	getDashboardSummaryHandler queries.GetDashboardSummaryQueryHandler,
	blobStore ports.BlobStore,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		addItemHandler:               addItemHandler,
		removeItemHandler:            removeItemHandler,
		confirmItemsHandler:          confirmItemsHandler,
		submitPackingEvidenceHandler: submitPackingEvidenceHandler,
		recordPackCheckHandler:       recordPackCheckHandler,
		resumeOrCreateBatchHandler:   resumeOrCreateBatchHandler,
		addOrderToBatchHandler:       addOrderToBatchHandler,
		removeOrderFromBatchHandler:  removeOrderFromBatchHandler,
		finalizeBatchHandler:         finalizeBatchHandler,
		verifyShipmentHandler:        verifyShipmentHandler,
		verifyShipmentsHandler:       verifyShipmentsHandler,
		overrideOrderHandler:         overrideOrderHandler,
		getOrdersByStatusHandler:     getOrdersByStatusHandler,
		getShipmentBatchHandler:      getShipmentBatchHandler,
		getDashboardSummaryHandler:   getDashboardSummaryHandler,
		blobStore:                    blobStore,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance behind the
// auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.POST("/orders/verify", s.VerifyShipments)
	api.POST("/orders/:orderId/items", s.AddItem)
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveItem)
	api.POST("/orders/:orderId/confirm", s.ConfirmItems)
	api.POST("/orders/:orderId/packing", s.SubmitPackingEvidence)
	api.POST("/orders/:orderId/pack-check", s.RecordPackCheck)
	api.POST("/orders/:orderId/verify", s.VerifyShipment)
	api.POST("/orders/:orderId/override", s.OverrideOrder)

	api.POST("/batches", s.ResumeOrCreateBatch)
	api.GET("/batches/:batchId", s.GetShipmentBatch)
	api.POST("/batches/:batchId/orders", s.AddOrderToBatch)
	api.DELETE("/batches/:batchId/orders/:orderId", s.RemoveOrderFromBatch)
	api.POST("/batches/:batchId/finalize", s.FinalizeBatch)

	api.GET("/dashboard", s.GetDashboardSummary)
	api.GET("/photos", s.GetPhoto)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes. Partial writes report
// 207 so the client knows some orders were flipped and can retry the rest.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrPartialWrite):
		status = http.StatusMultiStatus
	case errors.Is(err, errs.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, name+" is not a valid identifier")
	}
	return id, nil
}

type createOrderRequest struct {
	PackageCode     string     `json:"packageCode"`
	Platform        string     `json:"platform"`
	PlatformOrderID string     `json:"platformOrderId"`
	DueDate         *time.Time `json:"dueDate"`
	Notes           string     `json:"notes"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	dueDate := order.DefaultDueDate(time.Now())
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.PackageCode, req.Platform, req.PlatformOrderID, dueDate, req.Notes, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{OrderID: orderID.String()})
}

type addItemRequest struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
}

type addItemResponse struct {
	ItemID string `json:"itemId"`
}

// AddItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddItem(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req addItemRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(orderID, itemID, req.ProductName, req.Quantity, req.Unit, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, addItemResponse{ItemID: itemID.String()})
}

// RemoveItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveItem(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type confirmItemsRequest struct {
	Notes string `json:"notes"`
}

// ConfirmItems handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmItems(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req confirmItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewConfirmItemsCommand(orderID, req.Notes, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type evidencePhotoRequest struct {
	// Data is base64-encoded in the JSON payload.
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
}

type submitPackingEvidenceRequest struct {
	Photos        []evidencePhotoRequest `json:"photos"`
	OperatorNotes string                 `json:"operatorNotes"`
}

// SubmitPackingEvidence handles POST /api/v1/orders/:orderId/packing.
func (s *Server) SubmitPackingEvidence(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req submitPackingEvidenceRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	photos := make([]commands.EvidencePhoto, 0, len(req.Photos))
	for _, photo := range req.Photos {
		photos = append(photos, commands.EvidencePhoto{
			Data:        photo.Data,
			ContentType: photo.ContentType,
		})
	}

	cmd, err := commands.NewSubmitPackingEvidenceCommand(orderID, photos, req.OperatorNotes, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.submitPackingEvidenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type recordPackCheckRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

// RecordPackCheck handles POST /api/v1/orders/:orderId/pack-check.
func (s *Server) RecordPackCheck(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req recordPackCheckRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRecordPackCheckCommand(orderID, req.Approved, req.Notes, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordPackCheckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type resumeOrCreateBatchRequest struct {
	Courier string `json:"courier"`
}

type batchSessionResponse struct {
	BatchID string             `json:"batchId"`
	Courier string             `json:"courier"`
	Members []batchMemberEntry `json:"members"`
}

type batchMemberEntry struct {
	OrderID     string `json:"orderId"`
	PackageCode string `json:"packageCode"`
}

// ResumeOrCreateBatch handles POST /api/v1/batches. The operator's open batch
// is resumed when one exists; otherwise a fresh one is created with the
// requested courier.
func (s *Server) ResumeOrCreateBatch(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	var req resumeOrCreateBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewResumeOrCreateBatchCommand(kernel.NewUUID(), req.Courier, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	session, err := s.resumeOrCreateBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	members := make([]batchMemberEntry, 0, len(session.Members))
	for orderID, packageCode := range session.Members {
		members = append(members, batchMemberEntry{
			OrderID:     orderID.String(),
			PackageCode: packageCode,
		})
	}

	return ctx.JSON(http.StatusOK, batchSessionResponse{
		BatchID: session.BatchID.String(),
		Courier: session.Courier,
		Members: members,
	})
}

type addOrderToBatchRequest struct {
	PackageCode string `json:"packageCode"`
}

type addOrderToBatchResponse struct {
	Added bool `json:"added"`
}

// AddOrderToBatch handles POST /api/v1/batches/:batchId/orders. Scanning a
// package already in the batch reports added=false rather than an error.
func (s *Server) AddOrderToBatch(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	batchID, err := pathUUID(ctx, "batchId")
	if err != nil {
		return err
	}

	var req addOrderToBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAddOrderToBatchCommand(batchID, req.PackageCode, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	added, err := s.addOrderToBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addOrderToBatchResponse{Added: added})
}

// RemoveOrderFromBatch handles DELETE /api/v1/batches/:batchId/orders/:orderId.
func (s *Server) RemoveOrderFromBatch(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	batchID, err := pathUUID(ctx, "batchId")
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveOrderFromBatchCommand(batchID, orderID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeOrderFromBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type finalizeBatchRequest struct {
	GroupPhoto evidencePhotoRequest `json:"groupPhoto"`
}

// FinalizeBatch handles POST /api/v1/batches/:batchId/finalize.
func (s *Server) FinalizeBatch(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	batchID, err := pathUUID(ctx, "batchId")
	if err != nil {
		return err
	}

	var req finalizeBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewFinalizeBatchCommand(batchID, commands.EvidencePhoto{
		Data:        req.GroupPhoto.Data,
		ContentType: req.GroupPhoto.ContentType,
	}, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.finalizeBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyShipment handles POST /api/v1/orders/:orderId/verify.
func (s *Server) VerifyShipment(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewVerifyShipmentCommand(orderID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.verifyShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type verifyShipmentsRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// VerifyShipments handles POST /api/v1/orders/verify - bulk verification.
func (s *Server) VerifyShipments(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	var req verifyShipmentsRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "orderIds contains an invalid identifier")
		}
		orderIDs = append(orderIDs, orderID)
	}

	cmd, err := commands.NewVerifyShipmentsCommand(orderIDs, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.verifyShipmentsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type overrideOrderRequest struct {
	NewStatus   string     `json:"newStatus"`
	PackageCode string     `json:"packageCode"`
	DueDate     *time.Time `json:"dueDate"`
}

// OverrideOrder handles POST /api/v1/orders/:orderId/override.
func (s *Server) OverrideOrder(ctx echo.Context) error {
	caller, err := callingActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req overrideOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	newStatus := order.StatusUnknown
	if req.NewStatus != "" {
		newStatus = order.StatusFromString(req.NewStatus)
		if newStatus == order.StatusUnknown {
			return echo.NewHTTPError(http.StatusBadRequest, "newStatus is not a valid status")
		}
	}

	var dueDate time.Time
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	cmd, err := commands.NewOverrideOrderCommand(orderID, newStatus, req.PackageCode, dueDate, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.overrideOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderListEntry struct {
	OrderID       string    `json:"orderId"`
	PackageCode   string    `json:"packageCode"`
	Platform      string    `json:"platform"`
	Status        string    `json:"status"`
	DueDate       time.Time `json:"dueDate"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// GetOrdersByStatus handles GET /api/v1/orders?status=... - the task lists.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status := order.StatusFromString(ctx.QueryParam("status"))
	if status == order.StatusUnknown {
		return echo.NewHTTPError(http.StatusBadRequest, "status is not a valid status")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderListEntry, len(rows))
	for i, row := range rows {
		response[i] = orderListEntry{
			OrderID:       row.ID.String(),
			PackageCode:   row.PackageCode,
			Platform:      row.Platform,
			Status:        row.Status,
			DueDate:       row.DueDate,
			LastUpdatedAt: row.LastUpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type batchDetailResponse struct {
	BatchID       string              `json:"batchId"`
	Courier       string              `json:"courier"`
	Status        string              `json:"status"`
	GroupPhotoRef string              `json:"groupPhotoRef,omitempty"`
	ShippedAt     *time.Time          `json:"shippedAt,omitempty"`
	Members       []batchDetailMember `json:"members"`
}

type batchDetailMember struct {
	OrderID     string `json:"orderId"`
	PackageCode string `json:"packageCode"`
	Status      string `json:"status"`
}

// GetShipmentBatch handles GET /api/v1/batches/:batchId.
func (s *Server) GetShipmentBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "batchId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentBatchQuery(batchID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getShipmentBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	members := make([]batchDetailMember, len(detail.Members))
	for i, member := range detail.Members {
		members[i] = batchDetailMember{
			OrderID:     member.OrderID.String(),
			PackageCode: member.PackageCode,
			Status:      member.Status,
		}
	}

	return ctx.JSON(http.StatusOK, batchDetailResponse{
		BatchID:       detail.ID.String(),
		Courier:       detail.Courier,
		Status:        detail.Status,
		GroupPhotoRef: detail.GroupPhotoRef,
		ShippedAt:     detail.ShippedAt,
		Members:       members,
	})
}

type dashboardResponse struct {
	CountsByStatus map[string]int `json:"countsByStatus"`
	Total          int            `json:"total"`
}

// GetDashboardSummary handles GET /api/v1/dashboard.
func (s *Server) GetDashboardSummary(ctx echo.Context) error {
	summary, err := s.getDashboardSummaryHandler.Handle(
		ctx.Request().Context(), queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboardResponse{
		CountsByStatus: summary.CountsByStatus,
		Total:          summary.Total,
	})
}

// GetPhoto handles GET /api/v1/photos?ref=... - serves stored evidence photos.
func (s *Server) GetPhoto(ctx echo.Context) error {
	ref := ctx.QueryParam("ref")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ref is required")
	}

	data, contentType, err := s.blobStore.Get(ctx.Request().Context(), ref)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, contentType, data)
}
