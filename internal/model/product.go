package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is created once and lives forever. Name is the only identity a
// user sees; uniqueness on it is the only write-time check.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
