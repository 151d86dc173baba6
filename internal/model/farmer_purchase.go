package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FarmerPurchase is a farmer taking stock: either their share of a shipment
// distribution (ShipmentID set) or a direct warehouse sale (ShipmentID nil).
// TotalPaid is denormalized and equals Quantity × UnitPrice at write time.
type FarmerPurchase struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID *int64          `gorm:"index"`
	FarmerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPaid  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt  time.Time

	Farmer  *Farmer  `gorm:"foreignKey:FarmerID"`
	Product *Product `gorm:"foreignKey:ProductID"`
}
