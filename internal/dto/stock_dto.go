package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DirectSaleRequest sells warehouse stock straight to a farmer, outside any
// shipment. Both quantity and price must be strictly positive.
type DirectSaleRequest struct {
	FarmerID  string          `json:"farmer_id"  validate:"required,uuid"`
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type ReturnRequest struct {
	FarmerID     string          `json:"farmer_id"     validate:"required,uuid"`
	ProductID    string          `json:"product_id"    validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity"      validate:"required"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	Note         string          `json:"note"          validate:"max=2000"`
}

type TransferRequest struct {
	FromFarmerID string          `json:"from_farmer_id" validate:"required,uuid"`
	ToFarmerID   string          `json:"to_farmer_id"   validate:"required,uuid"`
	ProductID    string          `json:"product_id"     validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity"       validate:"required"`
	Note         string          `json:"note"           validate:"max=2000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RecordedResponse struct {
	ID string `json:"id"`
}

type StockSummaryResponse struct {
	Products []ProductSummaryResponse `json:"products"`
}
