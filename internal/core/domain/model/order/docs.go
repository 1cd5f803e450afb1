// Package order provides domain entities and business logic for sales order
// management. It implements the Order aggregate root with lifecycle
// management, payload validation, and derivation of monetary totals.
//
// The package includes:
//   - Order: The aggregate root that owns identity, header fields, lines, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Line: An immutable value object for one product entry within an order
//   - CancelReason: The fixed enumeration of auditable cancellation reasons
//   - Payload/ValidatePayload: Parse-and-coerce validation of raw client input
//     that accumulates every violation instead of short-circuiting
//
// Key business rules:
//   - Orders are created in Draft status and may be edited while Draft
//   - Confirmation is a one-way commitment gate; confirmed orders are
//     read-only except for cancellation
//   - Cancellation is terminal and always records a reason; the OTHER reason
//     requires a free-text note
//   - An order has at least one line and no two lines share a product
//   - Totals are derived from line data at full precision; rounding happens
//     only at the persistence/presentation boundary
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
