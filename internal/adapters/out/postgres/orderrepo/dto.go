// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Header amounts are denormalized from the lines and rounded to currency
// scale so listing queries never have to re-aggregate.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"size:16;uniqueIndex"`
	CustomerID    string    `gorm:"size:64;index"`
	OrderDate     time.Time `gorm:"type:date"`
	DeliveryDate  time.Time `gorm:"type:date"`
	Status        int       `gorm:"index"`
	CancelReason  *string   `gorm:"size:32"`
	CancelNote    string
	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2)"`
	DiscountTotal decimal.Decimal `gorm:"type:numeric(14,2)"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2)"`
	Version       int
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row. LineNo preserves the order the
// lines were entered in; unit price and discount keep their full entered
// precision while the line total is rounded to currency scale.
type OrderLineDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:idx_order_lines_product"`
	LineNo      int       `gorm:"primaryKey"`
	ProductID   string    `gorm:"size:64;uniqueIndex:idx_order_lines_product"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,4)"`
	DiscountPct decimal.Decimal `gorm:"type:numeric(7,4)"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Computed amounts are rounded to currency scale at this boundary.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cancelReason *string
	if reason := aggregate.CancelReason(); reason != nil {
		s := reason.String()
		cancelReason = &s
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     aggregate.ID().Bytes(),
			LineNo:      i + 1,
			ProductID:   line.ProductID(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			DiscountPct: line.DiscountPct(),
			LineTotal:   kernel.RoundCurrency(line.Total()),
		})
	}

	totals := aggregate.Totals()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		CustomerID:    aggregate.CustomerID(),
		OrderDate:     aggregate.OrderDate(),
		DeliveryDate:  aggregate.DeliveryDate(),
		Status:        int(aggregate.Status()),
		CancelReason:  cancelReason,
		CancelNote:    aggregate.CancelNote(),
		Subtotal:      kernel.RoundCurrency(totals.Subtotal),
		DiscountTotal: kernel.RoundCurrency(totals.DiscountTotal),
		Total:         kernel.RoundCurrency(totals.Total),
		Version:       aggregate.Version(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, status, and
// cancellation detail using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(
			lineDTO.ProductID,
			lineDTO.Quantity,
			lineDTO.UnitPrice,
			lineDTO.DiscountPct,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var cancelReason *order.CancelReason
	if dto.CancelReason != nil {
		reason, reasonErr := order.ParseCancelReason(*dto.CancelReason)
		if reasonErr != nil {
			return nil, reasonErr
		}
		cancelReason = &reason
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CustomerID,
		dto.OrderDate,
		dto.DeliveryDate,
		lines,
		order.Status(dto.Status),
		cancelReason,
		dto.CancelNote,
		dto.Version,
	)
}
