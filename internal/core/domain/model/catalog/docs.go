// Package catalog holds the read-only reference data the order core consumes:
// customers and sellable products. The order model stores only identifiers
// from this catalog; unit prices are captured on order lines at creation time
// and are independent of later catalog changes.
package catalog
