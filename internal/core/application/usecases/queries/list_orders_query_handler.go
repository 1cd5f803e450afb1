package queries

import (
	"context"
	"time"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries from the database. Newest
// orders come first so recent activity sits on top of listing screens.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve order summaries. Cancelled orders
// are excluded unless the query asks for them. Results are sorted by order
// number descending.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	statuses := []order.Status{order.Draft, order.Confirmed}
	if query.IncludeCancelled() {
		statuses = append(statuses, order.Cancelled)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			order_date,
			delivery_date,
			status,
			total
		FROM orders
		WHERE status IN ?
		ORDER BY order_number DESC
	`, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id uuid.UUID
		var orderDate, deliveryDate time.Time
		var status int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.CustomerID,
			&orderDate,
			&deliveryDate,
			&status,
			&total,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.OrderDate = orderDate.Format(order.DateLayout)
		resp.DeliveryDate = deliveryDate.Format(order.DateLayout)
		resp.Status = order.Status(status).String()
		resp.Total = total
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
