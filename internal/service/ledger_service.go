package service

import (
	"context"
	"errors"

	"shipledger/internal/dto"
	"shipledger/internal/ledger"
	"shipledger/internal/model"
	"shipledger/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// LedgerService records the standalone fact rows: direct warehouse sales,
// returns and farmer-to-farmer transfers. Each is a single-row insert; the
// only write-time guards are the positivity checks and the same-farmer rule.
// None of them check stock — a sale that drives current stock negative is
// recorded and simply shows up negative in the summary.
type LedgerService interface {
	RecordDirectSale(ctx context.Context, req dto.DirectSaleRequest) (*dto.RecordedResponse, error)
	RecordReturn(ctx context.Context, req dto.ReturnRequest) (*dto.RecordedResponse, error)
	RecordTransfer(ctx context.Context, req dto.TransferRequest) (*dto.RecordedResponse, error)
}

type ledgerService struct {
	purchases repository.PurchaseRepository
	returns   repository.ReturnRepository
	transfers repository.TransferRepository
	products  repository.ProductRepository
	farmers   repository.FarmerRepository
	rdb       *redis.Client
}

func NewLedgerService(
	purchases repository.PurchaseRepository,
	returns repository.ReturnRepository,
	transfers repository.TransferRepository,
	products repository.ProductRepository,
	farmers repository.FarmerRepository,
	rdb *redis.Client,
) LedgerService {
	return &ledgerService{
		purchases: purchases,
		returns:   returns,
		transfers: transfers,
		products:  products,
		farmers:   farmers,
		rdb:       rdb,
	}
}

func (s *ledgerService) RecordDirectSale(ctx context.Context, req dto.DirectSaleRequest) (*dto.RecordedResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, &ledger.ValidationError{Msg: "quantity must be positive"}
	}
	if !req.UnitPrice.IsPositive() {
		return nil, &ledger.ValidationError{Msg: "unit price must be positive"}
	}
	farmerID, productID, err := s.resolveFarmerProduct(ctx, req.FarmerID, req.ProductID)
	if err != nil {
		return nil, err
	}

	sale := model.FarmerPurchase{
		FarmerID:  farmerID,
		ProductID: productID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		TotalPaid: req.Quantity.Mul(req.UnitPrice),
	}
	if err := s.purchases.Create(ctx, &sale); err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	s.invalidateStockCache(ctx)
	return &dto.RecordedResponse{ID: sale.ID.String()}, nil
}

func (s *ledgerService) RecordReturn(ctx context.Context, req dto.ReturnRequest) (*dto.RecordedResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, &ledger.ValidationError{Msg: "quantity must be positive"}
	}
	if req.RefundAmount.IsNegative() {
		return nil, &ledger.ValidationError{Msg: "refund amount must not be negative"}
	}
	farmerID, productID, err := s.resolveFarmerProduct(ctx, req.FarmerID, req.ProductID)
	if err != nil {
		return nil, err
	}

	ret := model.Return{
		FarmerID:     farmerID,
		ProductID:    productID,
		Quantity:     req.Quantity,
		RefundAmount: req.RefundAmount,
		Note:         req.Note,
	}
	if err := s.returns.Create(ctx, &ret); err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	s.invalidateStockCache(ctx)
	return &dto.RecordedResponse{ID: ret.ID.String()}, nil
}

func (s *ledgerService) RecordTransfer(ctx context.Context, req dto.TransferRequest) (*dto.RecordedResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, &ledger.ValidationError{Msg: "quantity must be positive"}
	}
	if req.FromFarmerID == req.ToFarmerID {
		return nil, ledger.ErrSameFarmer
	}
	fromID, productID, err := s.resolveFarmerProduct(ctx, req.FromFarmerID, req.ProductID)
	if err != nil {
		return nil, err
	}
	toID, err := s.resolveFarmer(ctx, req.ToFarmerID)
	if err != nil {
		return nil, err
	}

	transfer := model.Transfer{
		FromFarmerID: fromID,
		ToFarmerID:   toID,
		ProductID:    productID,
		Quantity:     req.Quantity,
		Note:         req.Note,
	}
	// Transfers never touch current stock — the goods already left the warehouse.
	if err := s.transfers.Create(ctx, &transfer); err != nil {
		return nil, &ledger.StorageError{Err: err}
	}
	return &dto.RecordedResponse{ID: transfer.ID.String()}, nil
}

func (s *ledgerService) resolveFarmer(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ledger.ValidationError{Msg: "invalid farmer id: " + raw}
	}
	if _, err := s.farmers.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, &ledger.NotFoundError{Resource: "farmer " + raw}
		}
		return uuid.Nil, &ledger.StorageError{Err: err}
	}
	return id, nil
}

func (s *ledgerService) resolveFarmerProduct(ctx context.Context, rawFarmer, rawProduct string) (uuid.UUID, uuid.UUID, error) {
	farmerID, err := s.resolveFarmer(ctx, rawFarmer)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	productID, err := uuid.Parse(rawProduct)
	if err != nil {
		return uuid.Nil, uuid.Nil, &ledger.ValidationError{Msg: "invalid product id: " + rawProduct}
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, uuid.Nil, &ledger.NotFoundError{Resource: "product " + rawProduct}
		}
		return uuid.Nil, uuid.Nil, &ledger.StorageError{Err: err}
	}
	return farmerID, productID, nil
}

func (s *ledgerService) invalidateStockCache(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, StockCacheKey).Err()
	}
}
