// Package ports defines repository interfaces for the sales order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The repository is the component that holds the durable record, so it also
// carries the concurrency obligations the domain core only defines:
//   - Add assigns the human-readable sequential order number inside the
//     same transaction that persists the aggregate
//   - Update performs an optimistic version check against the stored record
//     and reports a lost race as a lifecycle conflict, the same error kind
//     an illegal transition produces
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its order number.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// record's version must match the aggregate's loaded version; a mismatch
	// is reported as errs.LifecycleConflictError and a missing record as
	// errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by unique identifier.
	// Returns errs.ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
