package service_test

import (
	"context"

	"shipledger/internal/model"
	"shipledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository for testing.
type stubProductRepo struct {
	products   map[uuid.UUID]*model.Product
	byName     map[string]*model.Product
	aggregates []repository.ProductAggregate // when set, Summary returns these
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[uuid.UUID]*model.Product),
		byName:   make(map[string]*model.Product),
	}
}

func (r *stubProductRepo) add(name string) *model.Product {
	p := &model.Product{ID: uuid.New(), Name: name}
	r.products[p.ID] = p
	r.byName[name] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	r.byName[p.Name] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) Summary(_ context.Context) ([]repository.ProductAggregate, error) {
	if r.aggregates != nil {
		return r.aggregates, nil
	}
	out := make([]repository.ProductAggregate, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, repository.ProductAggregate{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
	}
	return out, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubFarmerRepo is an in-memory FarmerRepository for testing.
type stubFarmerRepo struct {
	farmers map[uuid.UUID]*model.Farmer
	byName  map[string]*model.Farmer
}

func newStubFarmerRepo() *stubFarmerRepo {
	return &stubFarmerRepo{
		farmers: make(map[uuid.UUID]*model.Farmer),
		byName:  make(map[string]*model.Farmer),
	}
}

func (r *stubFarmerRepo) add(name string) *model.Farmer {
	f := &model.Farmer{ID: uuid.New(), Name: name}
	r.farmers[f.ID] = f
	r.byName[name] = f
	return f
}

func (r *stubFarmerRepo) Create(_ context.Context, f *model.Farmer) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.farmers[f.ID] = f
	r.byName[f.Name] = f
	return nil
}

func (r *stubFarmerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Farmer, error) {
	f, ok := r.farmers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFarmerRepo) FindByName(_ context.Context, name string) (*model.Farmer, error) {
	f, ok := r.byName[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFarmerRepo) Summary(_ context.Context) ([]repository.FarmerAggregate, error) {
	out := make([]repository.FarmerAggregate, 0, len(r.farmers))
	for _, f := range r.farmers {
		out = append(out, repository.FarmerAggregate{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt})
	}
	return out, nil
}

var _ repository.FarmerRepository = (*stubFarmerRepo)(nil)

// stubShipmentRepo is an in-memory ShipmentRepository. DB() returns nil so the
// service's transaction helper runs the callback directly.
type stubShipmentRepo struct {
	shipments map[int64]*model.Shipment
	seq       int64
	createErr error
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{shipments: make(map[int64]*model.Shipment)}
}

func (r *stubShipmentRepo) CreateTx(_ context.Context, _ *gorm.DB, s *model.Shipment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	s.ID = r.seq
	r.shipments[s.ID] = s
	return nil
}

func (r *stubShipmentRepo) FindByID(_ context.Context, id int64) (*model.Shipment, error) {
	s, ok := r.shipments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubShipmentRepo) Summary(_ context.Context) ([]repository.ShipmentAggregate, error) {
	out := make([]repository.ShipmentAggregate, 0, len(r.shipments))
	for _, s := range r.shipments {
		out = append(out, repository.ShipmentAggregate{ID: s.ID, CreatedAt: s.CreatedAt, Notes: s.Notes})
	}
	return out, nil
}

func (r *stubShipmentRepo) DB() *gorm.DB { return nil }

var _ repository.ShipmentRepository = (*stubShipmentRepo)(nil)

// stubPurchaseRepo records farmer_purchases rows in memory.
type stubPurchaseRepo struct {
	rows      []*model.FarmerPurchase
	createErr error
}

func (r *stubPurchaseRepo) CreateTx(_ context.Context, _ *gorm.DB, p *model.FarmerPurchase) error {
	if r.createErr != nil {
		return r.createErr
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.rows = append(r.rows, p)
	return nil
}

func (r *stubPurchaseRepo) Create(ctx context.Context, p *model.FarmerPurchase) error {
	return r.CreateTx(ctx, nil, p)
}

func (r *stubPurchaseRepo) ListByShipment(_ context.Context, shipmentID int64) ([]model.FarmerPurchase, error) {
	var out []model.FarmerPurchase
	for _, p := range r.rows {
		if p.ShipmentID != nil && *p.ShipmentID == shipmentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

type stubReturnRepo struct{ rows []*model.Return }

func (r *stubReturnRepo) Create(_ context.Context, ret *model.Return) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	r.rows = append(r.rows, ret)
	return nil
}

var _ repository.ReturnRepository = (*stubReturnRepo)(nil)

type stubTransferRepo struct{ rows []*model.Transfer }

func (r *stubTransferRepo) Create(_ context.Context, t *model.Transfer) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.rows = append(r.rows, t)
	return nil
}

var _ repository.TransferRepository = (*stubTransferRepo)(nil)
