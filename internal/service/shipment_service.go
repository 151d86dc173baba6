package service

import (
	"context"
	"errors"
	"time"

	"shipledger/internal/dto"
	"shipledger/internal/ledger"
	"shipledger/internal/model"
	"shipledger/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// StockCacheKey is the redis key the stock summary is cached under. Every
// write that changes stock deletes it (best effort).
const StockCacheKey = "stock:summary"

type ShipmentService interface {
	Commit(ctx context.Context, req dto.CreateShipmentRequest) (*dto.CreateShipmentResponse, error)
	List(ctx context.Context) ([]dto.ShipmentSummaryResponse, error)
	Detail(ctx context.Context, id int64) (*dto.ShipmentDetailResponse, error)
}

type shipmentService struct {
	shipments repository.ShipmentRepository
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
	farmers   repository.FarmerRepository
	rdb       *redis.Client
}

func NewShipmentService(
	shipments repository.ShipmentRepository,
	purchases repository.PurchaseRepository,
	products repository.ProductRepository,
	farmers repository.FarmerRepository,
	rdb *redis.Client,
) ShipmentService {
	return &shipmentService{
		shipments: shipments,
		purchases: purchases,
		products:  products,
		farmers:   farmers,
		rdb:       rdb,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with repository stubs).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Commit turns a shipment request into persisted records:
//  1. Resolve every product and farmer (pre-flight, outside the tx).
//  2. Rebuild the draft through the builder so every allocation rule runs.
//  3. BEGIN TX: one shipments row, one shipment_products row per entry, one
//     farmer_purchases row per allocation. COMMIT.
//
// A failure anywhere inside the transaction rolls the whole shipment back.
func (s *shipmentService) Commit(ctx context.Context, req dto.CreateShipmentRequest) (*dto.CreateShipmentResponse, error) {
	draft := ledger.NewDraft()

	for i, line := range req.Products {
		pid, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, &ledger.ValidationError{Msg: "invalid product_id: " + line.ProductID}
		}
		product, err := s.products.FindByID(ctx, pid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ledger.NotFoundError{Resource: "product " + line.ProductID}
			}
			return nil, &ledger.StorageError{Err: err}
		}
		if err := draft.AddProduct(product.ID, product.Name, line.UnitPrice, line.Quantity); err != nil {
			return nil, err
		}

		for _, alloc := range line.Allocations {
			fid, err := uuid.Parse(alloc.FarmerID)
			if err != nil {
				return nil, &ledger.ValidationError{Msg: "invalid farmer_id: " + alloc.FarmerID}
			}
			if _, err := s.farmers.FindByID(ctx, fid); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, &ledger.NotFoundError{Resource: "farmer " + alloc.FarmerID}
				}
				return nil, &ledger.StorageError{Err: err}
			}
			if err := draft.AssignFarmer(i, fid, alloc.Quantity, alloc.UnitPrice); err != nil {
				return nil, err
			}
		}
	}

	if err := draft.ValidateForCommit(); err != nil {
		return nil, err
	}

	shipment := model.Shipment{Notes: req.Notes}
	for _, e := range draft.Entries() {
		shipment.Products = append(shipment.Products, model.ShipmentProduct{
			ProductID: e.ProductID,
			UnitPrice: e.UnitPrice,
			Quantity:  e.Quantity,
			Subtotal:  e.Subtotal(),
		})
	}

	txErr := runTx(ctx, s.shipments.DB(), func(tx *gorm.DB) error {
		if err := s.shipments.CreateTx(ctx, tx, &shipment); err != nil {
			return err
		}
		for _, e := range draft.Entries() {
			for _, a := range e.Allocations {
				shipmentID := shipment.ID
				purchase := model.FarmerPurchase{
					ShipmentID: &shipmentID,
					FarmerID:   a.FarmerID,
					ProductID:  e.ProductID,
					Quantity:   a.Quantity,
					UnitPrice:  a.UnitPrice,
					TotalPaid:  a.TotalPaid(),
				}
				if err := s.purchases.CreateTx(ctx, tx, &purchase); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, &ledger.StorageError{Err: txErr}
	}

	s.invalidateStockCache(ctx)

	return &dto.CreateShipmentResponse{
		ShipmentID:    shipment.ID,
		PurchaseTotal: draft.PurchaseTotal(),
		SalesTotal:    draft.SalesTotal(),
	}, nil
}

func (s *shipmentService) List(ctx context.Context) ([]dto.ShipmentSummaryResponse, error) {
	rows, err := s.shipments.Summary(ctx)
	if err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	out := make([]dto.ShipmentSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ShipmentSummaryResponse{
			ID:           r.ID,
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
			Notes:        r.Notes,
			ProductCount: r.ProductCount,
			FarmerCount:  r.FarmerCount,
			TotalPaid:    r.TotalPaid,
		})
	}
	return out, nil
}

func (s *shipmentService) Detail(ctx context.Context, id int64) (*dto.ShipmentDetailResponse, error) {
	shipment, err := s.shipments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ledger.NotFoundError{Resource: "shipment"}
		}
		return nil, &ledger.StorageError{Err: err}
	}

	resp := &dto.ShipmentDetailResponse{
		ID:        shipment.ID,
		CreatedAt: shipment.CreatedAt.Format(time.RFC3339),
		Notes:     shipment.Notes,
	}
	for _, line := range shipment.Products {
		name := ""
		if line.Product != nil {
			name = line.Product.Name
		}
		resp.Lines = append(resp.Lines, dto.ShipmentLineResponse{
			Product:   name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
		resp.Total = resp.Total.Add(line.Subtotal)
	}
	return resp, nil
}

func (s *shipmentService) invalidateStockCache(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, StockCacheKey).Err()
	}
}
