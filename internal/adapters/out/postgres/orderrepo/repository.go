package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderNumberSequence is the database sequence that produces the sequential
// part of human-readable order numbers.
const orderNumberSequence = "order_numbers"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. The human-readable order number is
// drawn from the database sequence and assigned to the aggregate inside the
// same transaction that persists it, so numbers stay gapless per insert and
// unique under concurrency.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var next int64
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT nextval('%s')", orderNumberSequence)).
		Scan(&next).Error
	if err != nil {
		return err
	}

	if err = aggregate.AssignOrderNumber(fmt.Sprintf("ORD-%06d", next)); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database under an optimistic
// concurrency check: the row is only written when its stored version still
// matches the version the aggregate was loaded with. A lost race surfaces as
// a LifecycleConflictError, a vanished row as an ObjectNotFoundError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"customer_id":    dto.CustomerID,
			"order_date":     dto.OrderDate,
			"delivery_date":  dto.DeliveryDate,
			"status":         dto.Status,
			"cancel_reason":  dto.CancelReason,
			"cancel_note":    dto.CancelNote,
			"subtotal":       dto.Subtotal,
			"discount_total": dto.DiscountTotal,
			"total":          dto.Total,
			"version":        dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyStaleWrite(ctx, aggregate)
	}

	if err := r.replaceLines(ctx, dto); err != nil {
		return err
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// replaceLines swaps the stored line rows for the aggregate's current ones.
// Lines carry no identity of their own, so delete-and-insert is the whole
// reconciliation.
func (r *GormOrderRepository) replaceLines(ctx context.Context, dto OrderDTO) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&OrderLineDTO{}).Error
	if err != nil {
		return err
	}

	if len(dto.Lines) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Lines).Error
}

// classifyStaleWrite distinguishes a deleted row from a concurrent revision
// when the guarded update matched nothing.
func (r *GormOrderRepository) classifyStaleWrite(ctx context.Context, aggregate *order.Order) error {
	var stored OrderDTO
	err := r.db.WithContext(ctx).
		Select("status", "version").
		First(&stored, "id = ?", aggregate.ID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return err
	}

	return errs.NewLifecycleConflictErrorWithCause(
		order.Status(stored.Status).String(),
		"overwrite",
		fmt.Errorf("stored version %d does not match loaded version %d",
			stored.Version, aggregate.Version()),
	)
}
