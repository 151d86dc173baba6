package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer moves already-sold product between two farmers. The stock left
// the warehouse when it was sold, so transfers never touch current stock.
type Transfer struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FromFarmerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ToFarmerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Note         string          `gorm:"type:text"`
	CreatedAt    time.Time

	FromFarmer *Farmer  `gorm:"foreignKey:FromFarmerID"`
	ToFarmer   *Farmer  `gorm:"foreignKey:ToFarmerID"`
	Product    *Product `gorm:"foreignKey:ProductID"`
}
