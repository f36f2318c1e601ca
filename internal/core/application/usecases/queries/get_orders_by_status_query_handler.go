package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler reads the status listing from the database.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Rows come back ordered by due date, so the most
// urgent work sits on top of every task list.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			package_code,
			platform,
			status,
			due_date,
			last_updated_at
		FROM orders
		WHERE status = ?
		ORDER BY due_date, id
	`, query.Status()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			packageCode   string
			platform      string
			status        int
			dueDate       time.Time
			lastUpdatedAt time.Time
		)

		if err = rows.Scan(&id, &packageCode, &platform, &status, &dueDate, &lastUpdatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetOrdersByStatusQueryResponse{
			ID:            orderID,
			PackageCode:   packageCode,
			Platform:      platform,
			Status:        order.Status(status).String(),
			DueDate:       dueDate,
			LastUpdatedAt: lastUpdatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
