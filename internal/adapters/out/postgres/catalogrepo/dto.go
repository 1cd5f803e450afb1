// Package catalogrepo provides data transfer objects and mapping functions for
// the customer and product reference catalogs. The catalog is read-only from
// the order core's point of view; rows are seeded at startup or maintained by
// an external process.
package catalogrepo

import (
	"repuestos/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for customer references.
type CustomerDTO struct {
	ID   string `gorm:"size:64;primaryKey"`
	Name string `gorm:"size:128"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// ProductDTO represents the database structure for sellable products.
type ProductDTO struct {
	ID        string          `gorm:"size:64;primaryKey"`
	Code      string          `gorm:"size:32;uniqueIndex"`
	Name      string          `gorm:"size:128"`
	BasePrice decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// customerToDomain converts a database DTO to a customer reference.
func customerToDomain(dto CustomerDTO) (catalog.Customer, error) {
	return catalog.NewCustomer(dto.ID, dto.Name)
}

// productToDomain converts a database DTO to a product reference.
func productToDomain(dto ProductDTO) (catalog.Product, error) {
	return catalog.NewProduct(dto.ID, dto.Code, dto.Name, dto.BasePrice)
}

// CustomerFromDomain converts a customer reference to its database
// representation, used when seeding the catalog.
func CustomerFromDomain(customer catalog.Customer) CustomerDTO {
	return CustomerDTO{
		ID:   customer.ID(),
		Name: customer.Name(),
	}
}

// ProductFromDomain converts a product reference to its database
// representation, used when seeding the catalog.
func ProductFromDomain(product catalog.Product) ProductDTO {
	return ProductDTO{
		ID:        product.ID(),
		Code:      product.Code(),
		Name:      product.Name(),
		BasePrice: product.BasePrice(),
	}
}
