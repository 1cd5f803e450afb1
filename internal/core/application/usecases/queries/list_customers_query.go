package queries

import (
	"errors"

	"repuestos/internal/pkg/guard"
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

// ListCustomersQuery retrieves the customer catalog for order entry screens.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a parameterless query for all customers.
func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// ListCustomersQueryResponse is one customer reference row.
type ListCustomersQueryResponse struct {
	ID   string
	Name string
}
