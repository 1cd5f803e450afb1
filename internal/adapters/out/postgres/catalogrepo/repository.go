package catalogrepo

import (
	"context"

	"repuestos/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ListCustomers returns all customers sorted by name.
func (r *GormCatalogRepository) ListCustomers(ctx context.Context) ([]catalog.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]catalog.Customer, 0, len(dtos))
	for _, dto := range dtos {
		customer, err := customerToDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// ListProducts returns all products sorted by code.
func (r *GormCatalogRepository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		product, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
