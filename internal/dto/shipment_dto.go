package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AllocationRequest is one farmer's share of a shipment product.
type AllocationRequest struct {
	FarmerID  string          `json:"farmer_id"  validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

// ShipmentProductRequest is one product line of a draft shipment, with its
// farmer allocations. The builder enforces positivity and full allocation;
// validator tags only catch missing fields early.
type ShipmentProductRequest struct {
	ProductID   string              `json:"product_id" validate:"required,uuid"`
	UnitPrice   decimal.Decimal     `json:"unit_price" validate:"required"`
	Quantity    decimal.Decimal     `json:"quantity"   validate:"required"`
	Allocations []AllocationRequest `json:"allocations" validate:"dive"`
}

type CreateShipmentRequest struct {
	Notes    string                   `json:"notes"    validate:"max=2000"`
	Products []ShipmentProductRequest `json:"products" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CreateShipmentResponse struct {
	ShipmentID    int64           `json:"shipment_id"`
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
	SalesTotal    decimal.Decimal `json:"sales_total"`
}

// ShipmentSummaryResponse is one row of GET /v1/shipments, newest first.
type ShipmentSummaryResponse struct {
	ID           int64           `json:"id"`
	CreatedAt    string          `json:"created_at"`
	Notes        string          `json:"notes"`
	ProductCount int             `json:"product_count"`
	FarmerCount  int             `json:"farmer_count"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
}

// ShipmentLineResponse is one product line of a shipment detail.
type ShipmentLineResponse struct {
	Product   string          `json:"product"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type ShipmentDetailResponse struct {
	ID        int64                  `json:"id"`
	CreatedAt string                 `json:"created_at"`
	Notes     string                 `json:"notes"`
	Lines     []ShipmentLineResponse `json:"lines"`
	Total     decimal.Decimal        `json:"total"`
}
