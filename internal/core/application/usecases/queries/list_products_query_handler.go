package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListProductsQueryHandler reads the product catalog from the database.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for product catalog queries.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products sorted by code.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ListProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			base_price
		FROM products
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListProductsQueryResponse
		var basePrice decimal.Decimal

		err = rows.Scan(
			&resp.ID,
			&resp.Code,
			&resp.Name,
			&basePrice,
		)
		if err != nil {
			return nil, err
		}

		resp.BasePrice = basePrice
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
