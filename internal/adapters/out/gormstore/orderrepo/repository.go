package orderrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository on db, which may be a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row and then its item rows, and writes the generated id
// back into the aggregate. Atomicity comes from the surrounding transaction.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.Identify(dto.ID)
}

// UpdateStatus sets the status without checking the current one.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) (int64, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// AssignRider sets the acceptance flag and rider columns in one statement.
func (r *GormOrderRepository) AssignRider(ctx context.Context, id int64, rider order.Rider) (int64, error) {
	if err := rider.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_accepted": true,
			"rider_id":    rider.ID(),
			"rider_name":  rider.Name(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// MarkCompleted sets the status to completed.
func (r *GormOrderRepository) MarkCompleted(ctx context.Context, id int64) (int64, error) {
	return r.UpdateStatus(ctx, id, order.Completed)
}

// CancelStalePending cancels every pending order without a rider that was
// created before cutoff.
func (r *GormOrderRepository) CancelStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND rider_id IS NULL AND created_at < ?", order.Pending.String(), cutoff).
		Update("status", order.Canceled.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
