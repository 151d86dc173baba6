package repository

import (
	"context"

	"shipledger/internal/model"

	"gorm.io/gorm"
)

// PurchaseRepository writes farmer_purchases rows. Distribution rows are
// created inside the shipment commit transaction; direct sales are
// standalone single-row inserts.
type PurchaseRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, p *model.FarmerPurchase) error
	Create(ctx context.Context, p *model.FarmerPurchase) error
	ListByShipment(ctx context.Context, shipmentID int64) ([]model.FarmerPurchase, error)
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) CreateTx(ctx context.Context, tx *gorm.DB, p *model.FarmerPurchase) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) Create(ctx context.Context, p *model.FarmerPurchase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) ListByShipment(ctx context.Context, shipmentID int64) ([]model.FarmerPurchase, error) {
	var rows []model.FarmerPurchase
	err := r.db.WithContext(ctx).
		Preload("Farmer").
		Preload("Product").
		Where("shipment_id = ?", shipmentID).
		Order("created_at").
		Find(&rows).Error
	return rows, err
}
