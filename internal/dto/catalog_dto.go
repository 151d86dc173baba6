package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type CreateFarmerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductSummaryResponse is one row of GET /v1/products: lifetime aggregates
// plus the derived current stock. Products with no activity appear with all
// aggregates at zero.
type ProductSummaryResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TotalBought   decimal.Decimal `json:"total_bought"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalSold     decimal.Decimal `json:"total_sold"`
	TotalReturned decimal.Decimal `json:"total_returned"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	CreatedAt     string          `json:"created_at"`
}

// FarmerSummaryResponse is one row of GET /v1/farmers.
type FarmerSummaryResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalBought decimal.Decimal `json:"total_bought"`
	CreatedAt   string          `json:"created_at"`
}
