package repository

import (
	"context"
	"time"

	"shipledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductAggregate is one row of the product summary: lifetime per-table sums
// for a single product. Each fact table is aggregated independently — summing
// across a single multi-join (the obvious query) multiplies rows as soon as a
// product has activity in more than one table.
type ProductAggregate struct {
	ID            uuid.UUID
	Name          string
	CreatedAt     time.Time
	TotalBought   decimal.Decimal
	TotalCost     decimal.Decimal
	TotalSold     decimal.Decimal
	TotalReturned decimal.Decimal
}

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	Summary(ctx context.Context) ([]ProductAggregate, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	return &p, err
}

func (r *productRepo) Summary(ctx context.Context) ([]ProductAggregate, error) {
	var rows []ProductAggregate
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.created_at,
		       COALESCE(sp.total_bought, 0) AS total_bought,
		       COALESCE(sp.total_cost, 0)   AS total_cost,
		       COALESCE(fp.total_sold, 0)   AS total_sold,
		       COALESCE(r.total_returned, 0) AS total_returned
		FROM products p
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS total_bought, SUM(subtotal) AS total_cost
			FROM shipment_products GROUP BY product_id
		) sp ON sp.product_id = p.id
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS total_sold
			FROM farmer_purchases GROUP BY product_id
		) fp ON fp.product_id = p.id
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS total_returned
			FROM returns GROUP BY product_id
		) r ON r.product_id = p.id
		ORDER BY p.name
	`).Scan(&rows).Error
	return rows, err
}
