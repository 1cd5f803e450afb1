// Package kernel provides core domain primitives and utilities for the sales order system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money arithmetic: LineTotal and ComputeTotals, the single place where line
//     and order amounts are derived from quantity, unit price, and discount
//
// Monetary amounts are represented with github.com/shopspring/decimal. Intermediate
// arithmetic runs at full precision; rounding to currency precision happens only at
// the persistence/presentation boundary via RoundCurrency, never between successive
// computations, to avoid compounding rounding error.
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
