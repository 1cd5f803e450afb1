package queries

import (
	"errors"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one sales order with its full detail: header,
// lines, totals, and cancellation info when present.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s total %s\n", detail.OrderNumber, detail.Total)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineResponse is one line of an order detail read model. Monetary
// amounts are already rounded to currency scale.
type OrderLineResponse struct {
	ProductID   string
	Quantity    int
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
	LineTotal   decimal.Decimal
}

// GetOrderQueryResponse is the full order detail read model.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerID    string
	OrderDate     string
	DeliveryDate  string
	Status        string
	CancelReason  *string
	CancelNote    string
	Lines         []OrderLineResponse
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	Total         decimal.Decimal
	Version       int
}
