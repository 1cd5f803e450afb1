package queries

import (
	"errors"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves order summaries for listing screens. Cancelled
// orders are hidden unless explicitly requested.
//
// Example:
//
//	query := NewListOrdersQuery(false)
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Found %d active orders\n", len(orders))
type ListOrdersQuery struct {
	includeCancelled bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for order summaries. When
// includeCancelled is false, cancelled orders are excluded from the result.
func NewListOrdersQuery(includeCancelled bool) ListOrdersQuery {
	return ListOrdersQuery{
		includeCancelled: includeCancelled,
		guard:            guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// IncludeCancelled reports whether cancelled orders should be listed too.
func (q ListOrdersQuery) IncludeCancelled() bool {
	return q.includeCancelled
}

// ListOrdersQueryResponse is one order summary row: header fields plus the
// rounded grand total, without lines.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerID   string
	OrderDate    string
	DeliveryDate string
	Status       string
	Total        decimal.Decimal
}
