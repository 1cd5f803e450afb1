package queries

import (
	"errors"

	"repuestos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves the product catalog for order entry screens.
// Base prices are returned so the UI can prefill unit prices on new lines.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a parameterless query for all products.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ListProductsQueryResponse is one product reference row.
type ListProductsQueryResponse struct {
	ID        string
	Code      string
	Name      string
	BasePrice decimal.Decimal
}
