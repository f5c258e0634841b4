package orderrepo

import (
	"context"
	"errors"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/core/ports"
	"comandas/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

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

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The full row is rewritten:
// Updates skips zero values, which would silently keep a stale station_id
// after delivery, so every column is selected explicitly.
//
// The write is conditioned on the status the caller loaded the aggregate
// with. A concurrent writer that moved the order past that status makes this
// statement match zero rows, and the stale write is rejected instead of
// resurrecting the row. Orders are never deleted, so zero rows always means
// a concurrent modification.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := expected.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrOrderConcurrentlyModified
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingOrdered retrieves all Pending orders in admission scan order:
// priority descending, then creation time, then id as the final tie breaker.
func (r *GormOrderRepository) GetAllPendingOrdered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", order.Pending).
		Order("priority DESC, created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountActiveByStation counts orders holding a station slot, grouped by
// station. Only InProgress and Ready orders occupy slots.
func (r *GormOrderRepository) CountActiveByStation(ctx context.Context) (map[kernel.UUID]int, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("station_id, COUNT(*) AS active").
		Where("status IN ? AND station_id IS NOT NULL", []order.Status{order.InProgress, order.Ready}).
		Group("station_id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[kernel.UUID]int)
	for rows.Next() {
		var stationID uuid.UUID
		var active int

		if err = rows.Scan(&stationID, &active); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(stationID[:])
		if idErr != nil {
			return nil, idErr
		}
		counts[id] = active
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
