package ports

import (
	"context"

	"repuestos/internal/core/domain/model/catalog"
)

// CatalogRepository is the read-only contract for customer and product
// reference data. The order core queries it once to populate selectable
// options and to seed a line's initial unit price default; it is never
// re-queried mid-computation.
type CatalogRepository interface {
	// ListCustomers returns all customers known to the catalog.
	ListCustomers(ctx context.Context) ([]catalog.Customer, error)

	// ListProducts returns all sellable products with their base prices.
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}
