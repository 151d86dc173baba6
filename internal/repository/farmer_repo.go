package repository

import (
	"context"
	"time"

	"shipledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FarmerAggregate is one row of the farmer summary: how much the farmer has
// paid across all purchases, shipment distributions and direct sales alike.
type FarmerAggregate struct {
	ID          uuid.UUID
	Name        string
	CreatedAt   time.Time
	TotalBought decimal.Decimal
}

type FarmerRepository interface {
	Create(ctx context.Context, f *model.Farmer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Farmer, error)
	FindByName(ctx context.Context, name string) (*model.Farmer, error)
	Summary(ctx context.Context) ([]FarmerAggregate, error)
}

type farmerRepo struct{ db *gorm.DB }

func NewFarmerRepository(db *gorm.DB) FarmerRepository { return &farmerRepo{db: db} }

func (r *farmerRepo) Create(ctx context.Context, f *model.Farmer) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Farmer, error) {
	var f model.Farmer
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *farmerRepo) FindByName(ctx context.Context, name string) (*model.Farmer, error) {
	var f model.Farmer
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&f).Error
	return &f, err
}

func (r *farmerRepo) Summary(ctx context.Context) ([]FarmerAggregate, error) {
	var rows []FarmerAggregate
	err := r.db.WithContext(ctx).Raw(`
		SELECT f.id, f.name, f.created_at,
		       COALESCE(fp.total_bought, 0) AS total_bought
		FROM farmers f
		LEFT JOIN (
			SELECT farmer_id, SUM(total_paid) AS total_bought
			FROM farmer_purchases GROUP BY farmer_id
		) fp ON fp.farmer_id = f.id
		ORDER BY f.name
	`).Scan(&rows).Error
	return rows, err
}
