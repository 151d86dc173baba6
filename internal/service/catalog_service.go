package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"shipledger/internal/dto"
	"shipledger/internal/ledger"
	"shipledger/internal/model"
	"shipledger/internal/repository"

	"gorm.io/gorm"
)

// CatalogService creates products and farmers and serves their summaries.
// Both entities are append-only: no update, no delete, uniqueness on name is
// the only write-time check, done as an explicit pre-check so a conflict is
// distinguishable from a generic storage failure.
type CatalogService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductSummaryResponse, error)
	CreateFarmer(ctx context.Context, req dto.CreateFarmerRequest) (*dto.FarmerSummaryResponse, error)
	ProductSummary(ctx context.Context) ([]dto.ProductSummaryResponse, error)
	FarmerSummary(ctx context.Context) ([]dto.FarmerSummaryResponse, error)
}

type catalogService struct {
	products repository.ProductRepository
	farmers  repository.FarmerRepository
}

func NewCatalogService(products repository.ProductRepository, farmers repository.FarmerRepository) CatalogService {
	return &catalogService{products: products, farmers: farmers}
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductSummaryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ledger.ValidationError{Msg: "product name must not be empty"}
	}

	if _, err := s.products.FindByName(ctx, name); err == nil {
		return nil, &ledger.DuplicateError{Msg: "product name already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ledger.StorageError{Err: err}
	}

	product := model.Product{Name: name}
	if err := s.products.Create(ctx, &product); err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	return &dto.ProductSummaryResponse{
		ID:        product.ID.String(),
		Name:      product.Name,
		CreatedAt: product.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *catalogService) CreateFarmer(ctx context.Context, req dto.CreateFarmerRequest) (*dto.FarmerSummaryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ledger.ValidationError{Msg: "farmer name must not be empty"}
	}

	if _, err := s.farmers.FindByName(ctx, name); err == nil {
		return nil, &ledger.DuplicateError{Msg: "farmer name already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ledger.StorageError{Err: err}
	}

	farmer := model.Farmer{Name: name}
	if err := s.farmers.Create(ctx, &farmer); err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	return &dto.FarmerSummaryResponse{
		ID:        farmer.ID.String(),
		Name:      farmer.Name,
		CreatedAt: farmer.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ProductSummary reports lifetime aggregates per product, ordered by name.
// current_stock = bought − sold − returned; never clamped, a negative value
// is reported as-is.
func (s *catalogService) ProductSummary(ctx context.Context) ([]dto.ProductSummaryResponse, error) {
	rows, err := s.products.Summary(ctx)
	if err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	out := make([]dto.ProductSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductSummaryResponse{
			ID:            r.ID.String(),
			Name:          r.Name,
			TotalBought:   r.TotalBought,
			TotalCost:     r.TotalCost,
			TotalSold:     r.TotalSold,
			TotalReturned: r.TotalReturned,
			CurrentStock:  r.TotalBought.Sub(r.TotalSold).Sub(r.TotalReturned),
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *catalogService) FarmerSummary(ctx context.Context) ([]dto.FarmerSummaryResponse, error) {
	rows, err := s.farmers.Summary(ctx)
	if err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	out := make([]dto.FarmerSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FarmerSummaryResponse{
			ID:          r.ID.String(),
			Name:        r.Name,
			TotalBought: r.TotalBought,
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
