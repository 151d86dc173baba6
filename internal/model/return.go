package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Return is stock coming back from a farmer into the warehouse.
type Return struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FarmerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	RefundAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Note         string          `gorm:"type:text"`
	CreatedAt    time.Time

	Farmer  *Farmer  `gorm:"foreignKey:FarmerID"`
	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName keeps the historical table name (GORM would produce "returns"
// anyway, but being explicit avoids surprises with the SQL keyword).
func (Return) TableName() string { return "returns" }
