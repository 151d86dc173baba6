package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shipment is one factory purchase event. Receipts and the UI refer to
// shipments as "#N", so the id stays a plain auto-increment integer rather
// than a uuid.
type Shipment struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time

	Products []ShipmentProduct `gorm:"foreignKey:ShipmentID"`
}

// ShipmentProduct records how much of one product was bought in a shipment
// and at what price. Subtotal is denormalized but must equal
// UnitPrice × Quantity at write time; rows are immutable after commit.
type ShipmentProduct struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID int64           `gorm:"not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt  time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (ShipmentProduct) TableName() string { return "shipment_products" }
