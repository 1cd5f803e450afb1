package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCustomersQueryHandler reads the customer catalog from the database.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomersQueryHandler creates a handler for customer catalog queries.
func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers sorted by name.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) ([]ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]ListCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM customers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCustomersQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
		)
		if err != nil {
			return nil, err
		}

		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
