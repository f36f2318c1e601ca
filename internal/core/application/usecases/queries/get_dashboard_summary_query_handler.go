package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardSummaryQueryHandler reads per-status order counts.
type GetDashboardSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardSummaryQueryHandler creates a handler for the dashboard summary.
func NewGetDashboardSummaryQueryHandler(db *gorm.DB) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	counts := make(map[string]int)
	for _, s := range []order.Status{
		order.AddingItems,
		order.ReadyToPack,
		order.PendingPackCheck,
		order.ReadyForShipment,
		order.PackRejected,
		order.Shipped,
		order.ShipmentApproved,
	} {
		counts[s.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardSummaryQueryResponse{}, err
		}

		counts[order.Status(status).String()] = count
		total += count
	}

	if err = rows.Err(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	return GetDashboardSummaryQueryResponse{
		CountsByStatus: counts,
		Total:          total,
	}, nil
}
