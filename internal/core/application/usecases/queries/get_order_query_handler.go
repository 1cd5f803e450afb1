package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its lines straight from the
// database, bypassing the domain aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order detail read model.
// Returns an ObjectNotFoundError when no order exists under the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var orderDate, deliveryDate time.Time
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			order_date,
			delivery_date,
			status,
			cancel_reason,
			cancel_note,
			subtotal,
			discount_total,
			total,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&resp.CustomerID,
		&orderDate,
		&deliveryDate,
		&status,
		&resp.CancelReason,
		&resp.CancelNote,
		&resp.Subtotal,
		&resp.DiscountTotal,
		&resp.Total,
		&resp.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ID = orderID
	resp.OrderDate = orderDate.Format(order.DateLayout)
	resp.DeliveryDate = deliveryDate.Format(order.DateLayout)
	resp.Status = order.Status(status).String()

	lines, err := h.readLines(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	resp.Lines = lines

	return &resp, nil
}

func (h GetOrderQueryHandler) readLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price,
			discount_pct,
			line_total
		FROM order_lines
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var unitPrice, discountPct, lineTotal decimal.Decimal

		err = rows.Scan(
			&line.ProductID,
			&line.Quantity,
			&unitPrice,
			&discountPct,
			&lineTotal,
		)
		if err != nil {
			return nil, err
		}

		line.UnitPrice = unitPrice
		line.DiscountPct = discountPct
		line.LineTotal = lineTotal
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
