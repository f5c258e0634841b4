// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and station assignment. Order lines are
// stored as a jsonb document; they are immutable and never queried on their own.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StationID         *uuid.UUID `gorm:"type:uuid;index"`
	Items             []byte     `gorm:"type:jsonb"`
	Priority          int        `gorm:"index"`
	Status            int        `gorm:"index"`
	AdmissionAttempts int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb representation of one order line.
type ItemDTO struct {
	ArticleID uuid.UUID `json:"article_id"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional station assignment.
func fromDomain(o *order.Order) (OrderDTO, error) {
	var stationID *uuid.UUID
	if id := o.Station(); id != nil {
		raw := id.Bytes()
		stationID = &raw
	}

	items := o.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ArticleID: item.ArticleID().Bytes(),
			Quantity:  item.Quantity(),
			Notes:     item.Notes(),
		})
	}

	rawItems, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:                o.ID().Bytes(),
		StationID:         stationID,
		Items:             rawItems,
		Priority:          o.Priority(),
		Status:            int(o.Status()),
		AdmissionAttempts: o.AdmissionAttempts(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, station assignment
// and attempt counter using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var stationID *kernel.UUID
	if dto.StationID != nil {
		sID, stationErr := kernel.UUIDFromBytes((*dto.StationID)[:])
		if stationErr != nil {
			return nil, stationErr
		}

		stationID = &sID
	}

	var itemDTOs []ItemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		articleID, articleErr := kernel.UUIDFromBytes(itemDTO.ArticleID[:])
		if articleErr != nil {
			return nil, articleErr
		}

		item, itemErr := order.NewItem(articleID, itemDTO.Quantity, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		items,
		dto.Priority,
		order.Status(dto.Status),
		stationID,
		dto.AdmissionAttempts,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
