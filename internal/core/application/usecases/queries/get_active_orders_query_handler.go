package queries

import (
	"context"
	"time"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Filters out delivered and cancelled orders to present the live workload.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Returns orders in pending, in_progress, or ready status. Results are sorted
// the same way the admission worker scans them: priority descending, then
// creation time, then id.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			station_id,
			priority,
			admission_attempts,
			created_at,
			updated_at
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY priority DESC, created_at, id
	`, order.Pending, order.InProgress, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var status int
		var stationID uuid.NullUUID
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&status,
			&stationID,
			&orderResp.Priority,
			&orderResp.AdmissionAttempts,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()
		orderResp.CreatedAt = createdAt
		orderResp.UpdatedAt = updatedAt

		if stationID.Valid {
			sid, sidErr := kernel.UUIDFromBytes(stationID.UUID[:])
			if sidErr != nil {
				return nil, sidErr
			}
			orderResp.StationID = &sid
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
