package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetShipmentBatchQueryHandler reads the batch detail projection.
type GetShipmentBatchQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentBatchQueryHandler creates a handler for batch details.
func NewGetShipmentBatchQueryHandler(db *gorm.DB) GetShipmentBatchQueryHandler {
	return GetShipmentBatchQueryHandler{db: db}
}

// Handle loads the batch row and resolves the current status of each member.
// A member key whose order row has vanished is skipped rather than failing
// the whole view.
func (h GetShipmentBatchQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentBatchQuery,
) (GetShipmentBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentBatchQueryResponse{}, err
	}

	var (
		id            uuid.UUID
		courier       string
		status        int
		groupPhotoRef string
		shippedAt     *time.Time
		orderKeys     pq.StringArray
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier,
			status,
			group_photo_ref,
			shipped_at,
			order_keys
		FROM shipment_batches
		WHERE id = ?
	`, query.BatchID().Bytes()).Row()

	err := row.Scan(&id, &courier, &status, &groupPhotoRef, &shippedAt, &orderKeys)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || err.Error() == "sql: no rows in result set" {
			return GetShipmentBatchQueryResponse{}, errs.NewObjectNotFoundError("batch", query.BatchID().String())
		}
		return GetShipmentBatchQueryResponse{}, err
	}

	batchID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentBatchQueryResponse{}, err
	}

	members, err := h.loadMembers(ctx, orderKeys)
	if err != nil {
		return GetShipmentBatchQueryResponse{}, err
	}

	return GetShipmentBatchQueryResponse{
		ID:            batchID,
		Courier:       courier,
		Status:        batch.Status(status).String(),
		GroupPhotoRef: groupPhotoRef,
		ShippedAt:     shippedAt,
		Members:       members,
	}, nil
}

func (h GetShipmentBatchQueryHandler) loadMembers(
	ctx context.Context,
	orderKeys []string,
) ([]BatchMemberResponse, error) {
	members := make([]BatchMemberResponse, 0, len(orderKeys))
	if len(orderKeys) == 0 {
		return members, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			package_code,
			status
		FROM orders
		WHERE id IN ?
		ORDER BY id
	`, orderKeys).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			packageCode string
			status      int
		)

		if err = rows.Scan(&id, &packageCode, &status); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		members = append(members, BatchMemberResponse{
			OrderID:     orderID,
			PackageCode: packageCode,
			Status:      order.Status(status).String(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
