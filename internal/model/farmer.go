package model

import (
	"time"

	"github.com/google/uuid"
)

// Farmer buys products, either out of a shipment distribution or directly
// from warehouse stock.
type Farmer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
