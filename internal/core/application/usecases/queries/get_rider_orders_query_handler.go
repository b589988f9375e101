package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRiderOrdersQueryHandler lists the orders accepted by one rider.
type GetRiderOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetRiderOrdersQueryHandler(db *gorm.DB) GetRiderOrdersQueryHandler {
	return GetRiderOrdersQueryHandler{db: db}
}

// Handle returns the rider's orders newest first.
func (h GetRiderOrdersQueryHandler) Handle(ctx context.Context, query GetRiderOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db, `
		WHERE is_accepted = ? AND rider_id = ?
		ORDER BY created_at DESC, id DESC
	`, true, query.RiderID())
}
