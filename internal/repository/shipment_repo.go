package repository

import (
	"context"
	"time"

	"shipledger/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShipmentAggregate is one row of the shipment list: distinct product and
// farmer counts plus the sales total, for that shipment only.
type ShipmentAggregate struct {
	ID           int64
	CreatedAt    time.Time
	Notes        string
	ProductCount int
	FarmerCount  int
	TotalPaid    decimal.Decimal
}

type ShipmentRepository interface {
	// CreateTx inserts the shipment row and its product lines. Callers must
	// pass the transaction the whole commit runs in.
	CreateTx(ctx context.Context, tx *gorm.DB, s *model.Shipment) error
	FindByID(ctx context.Context, id int64) (*model.Shipment, error)
	Summary(ctx context.Context) ([]ShipmentAggregate, error)

	// DB exposes the underlying *gorm.DB so the service layer can open the
	// commit transaction.
	DB() *gorm.DB
}

type shipmentRepo struct{ db *gorm.DB }

func NewShipmentRepository(db *gorm.DB) ShipmentRepository { return &shipmentRepo{db: db} }

func (r *shipmentRepo) DB() *gorm.DB { return r.db }

func (r *shipmentRepo) CreateTx(ctx context.Context, tx *gorm.DB, s *model.Shipment) error {
	// GORM inserts the Products association rows with the new shipment id.
	return tx.WithContext(ctx).Create(s).Error
}

func (r *shipmentRepo) FindByID(ctx context.Context, id int64) (*model.Shipment, error) {
	var s model.Shipment
	err := r.db.WithContext(ctx).Preload("Products.Product").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *shipmentRepo) Summary(ctx context.Context) ([]ShipmentAggregate, error) {
	var rows []ShipmentAggregate
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id, s.created_at, s.notes,
		       COALESCE(sp.product_count, 0) AS product_count,
		       COALESCE(fp.farmer_count, 0)  AS farmer_count,
		       COALESCE(fp.total_paid, 0)    AS total_paid
		FROM shipments s
		LEFT JOIN (
			SELECT shipment_id, COUNT(DISTINCT product_id) AS product_count
			FROM shipment_products GROUP BY shipment_id
		) sp ON sp.shipment_id = s.id
		LEFT JOIN (
			SELECT shipment_id, COUNT(DISTINCT farmer_id) AS farmer_count, SUM(total_paid) AS total_paid
			FROM farmer_purchases WHERE shipment_id IS NOT NULL GROUP BY shipment_id
		) fp ON fp.shipment_id = s.id
		ORDER BY s.created_at DESC
	`).Scan(&rows).Error
	return rows, err
}
