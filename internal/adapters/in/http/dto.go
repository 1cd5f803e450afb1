package http

import (
	"repuestos/internal/core/application/usecases/queries"
	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderRequest is the request body for creating or updating an order.
// Numeric fields travel as strings so malformed input reaches the domain
// validator intact instead of failing JSON deserialization with a generic
// type error.
type OrderRequest struct {
	CustomerID   string             `json:"customerId"`
	OrderDate    string             `json:"orderDate"`
	DeliveryDate string             `json:"deliveryDate"`
	Lines        []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is one proposed order line.
type OrderLineRequest struct {
	ProductID   string `json:"productId"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	DiscountPct string `json:"discountPct"`
}

// CancelRequest is the request body for cancelling an order.
type CancelRequest struct {
	Reason string `json:"reason"`
	Note   string `json:"note"`
}

// OrderResponse is the full representation of an order returned by command
// endpoints and the detail query. Monetary amounts are fixed to two decimal
// places.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	CustomerID    string              `json:"customerId"`
	OrderDate     string              `json:"orderDate"`
	DeliveryDate  string              `json:"deliveryDate"`
	Status        string              `json:"status"`
	CancelReason  *string             `json:"cancelReason,omitempty"`
	CancelNote    string              `json:"cancelNote,omitempty"`
	Lines         []OrderLineResponse `json:"lines"`
	Subtotal      string              `json:"subtotal"`
	DiscountTotal string              `json:"discountTotal"`
	Total         string              `json:"total"`
	Version       int                 `json:"version"`
}

// OrderLineResponse is one order line with its computed total.
type OrderLineResponse struct {
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	DiscountPct string `json:"discountPct"`
	LineTotal   string `json:"lineTotal"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID           string `json:"id"`
	OrderNumber  string `json:"orderNumber"`
	CustomerID   string `json:"customerId"`
	OrderDate    string `json:"orderDate"`
	DeliveryDate string `json:"deliveryDate"`
	Status       string `json:"status"`
	Total        string `json:"total"`
}

// CustomerResponse is one customer catalog entry.
type CustomerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is one product catalog entry.
type ProductResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	BasePrice string `json:"basePrice"`
}

func (r OrderRequest) toPayload() order.Payload {
	lines := make([]order.LinePayload, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, order.LinePayload{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			DiscountPct: line.DiscountPct,
		})
	}

	return order.Payload{
		CustomerID:   r.CustomerID,
		OrderDate:    r.OrderDate,
		DeliveryDate: r.DeliveryDate,
		Lines:        lines,
	}
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineResponse{
			ProductID:   line.ProductID(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().String(),
			DiscountPct: line.DiscountPct().String(),
			LineTotal:   currency(line.Total()),
		})
	}

	var cancelReason *string
	if reason := aggregate.CancelReason(); reason != nil {
		s := reason.String()
		cancelReason = &s
	}

	totals := aggregate.Totals()

	return OrderResponse{
		ID:            aggregate.ID().String(),
		OrderNumber:   aggregate.OrderNumber(),
		CustomerID:    aggregate.CustomerID(),
		OrderDate:     aggregate.OrderDate().Format(order.DateLayout),
		DeliveryDate:  aggregate.DeliveryDate().Format(order.DateLayout),
		Status:        aggregate.Status().String(),
		CancelReason:  cancelReason,
		CancelNote:    aggregate.CancelNote(),
		Lines:         lines,
		Subtotal:      currency(totals.Subtotal),
		DiscountTotal: currency(totals.DiscountTotal),
		Total:         currency(totals.Total),
		Version:       aggregate.Version(),
	}
}

func orderDetailToResponse(detail *queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(detail.Lines))
	for _, line := range detail.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.String(),
			DiscountPct: line.DiscountPct.String(),
			LineTotal:   currency(line.LineTotal),
		})
	}

	return OrderResponse{
		ID:            detail.ID.String(),
		OrderNumber:   detail.OrderNumber,
		CustomerID:    detail.CustomerID,
		OrderDate:     detail.OrderDate,
		DeliveryDate:  detail.DeliveryDate,
		Status:        detail.Status,
		CancelReason:  detail.CancelReason,
		CancelNote:    detail.CancelNote,
		Lines:         lines,
		Subtotal:      currency(detail.Subtotal),
		DiscountTotal: currency(detail.DiscountTotal),
		Total:         currency(detail.Total),
		Version:       detail.Version,
	}
}

func orderSummariesToResponse(summaries []queries.ListOrdersQueryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, OrderSummaryResponse{
			ID:           summary.ID.String(),
			OrderNumber:  summary.OrderNumber,
			CustomerID:   summary.CustomerID,
			OrderDate:    summary.OrderDate,
			DeliveryDate: summary.DeliveryDate,
			Status:       summary.Status,
			Total:        currency(summary.Total),
		})
	}
	return response
}

// currency renders an amount rounded to currency scale with a fixed number
// of decimal places.
func currency(amount decimal.Decimal) string {
	return kernel.RoundCurrency(amount).StringFixed(kernel.CurrencyScale)
}
