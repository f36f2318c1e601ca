package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

// GetDashboardSummaryQuery retrieves order counts per lifecycle status for the
// dashboard overview.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a parameterless dashboard query.
func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// GetDashboardSummaryQueryResponse maps each status name to its order count.
// Statuses with no orders are present with a zero count so the dashboard
// always shows the full pipeline.
type GetDashboardSummaryQueryResponse struct {
	CountsByStatus map[string]int
	Total          int
}
