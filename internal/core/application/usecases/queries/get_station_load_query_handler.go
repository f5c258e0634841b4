package queries

import (
	"context"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationLoadQueryHandler retrieves stations with their occupancy from the
// database. Occupancy is the count of orders currently holding a slot, which
// is the in_progress and ready pair.
type GetStationLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetStationLoadQueryHandler creates a handler for station load queries.
// Requires a GORM database connection for query execution.
func NewGetStationLoadQueryHandler(db *gorm.DB) GetStationLoadQueryHandler {
	return GetStationLoadQueryHandler{db: db}
}

// Handle executes the query to retrieve all stations with their active order
// counts. Stations without active orders appear with zero occupancy. Results
// are sorted by station ID for consistent output.
func (h GetStationLoadQueryHandler) Handle(
	ctx context.Context,
	query GetStationLoadQuery,
) ([]GetStationLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stations := make([]GetStationLoadQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.max_capacity,
			COUNT(o.id) AS occupied
		FROM stations s
		LEFT JOIN orders o
			ON o.station_id = s.id
			AND o.status IN (?, ?)
		GROUP BY s.id, s.name, s.max_capacity
		ORDER BY s.id
	`, order.InProgress, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stationResp GetStationLoadQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&stationResp.Name,
			&stationResp.MaxCapacity,
			&stationResp.Occupied,
		)
		if err != nil {
			return nil, err
		}

		stationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		stationResp.StationID = stationID

		stations = append(stations, stationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
