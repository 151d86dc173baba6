package service_test

import (
	"context"
	"testing"

	"shipledger/internal/dto"
	"shipledger/internal/ledger"
	"shipledger/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type shipmentFixture struct {
	svc       service.ShipmentService
	products  *stubProductRepo
	farmers   *stubFarmerRepo
	shipments *stubShipmentRepo
	purchases *stubPurchaseRepo
}

func newShipmentFixture() *shipmentFixture {
	f := &shipmentFixture{
		products:  newStubProductRepo(),
		farmers:   newStubFarmerRepo(),
		shipments: newStubShipmentRepo(),
		purchases: &stubPurchaseRepo{},
	}
	f.svc = service.NewShipmentService(f.shipments, f.purchases, f.products, f.farmers, nil)
	return f
}

func TestShipmentCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path persists shipment and purchases", func(t *testing.T) {
		f := newShipmentFixture()
		tomatoes := f.products.add("Tomatoes")
		ali := f.farmers.add("Ali")
		bashir := f.farmers.add("Bashir")

		resp, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Notes: "first truck",
			Products: []dto.ShipmentProductRequest{{
				ProductID: tomatoes.ID.String(),
				UnitPrice: dec("50"),
				Quantity:  dec("100"),
				Allocations: []dto.AllocationRequest{
					{FarmerID: ali.ID.String(), Quantity: dec("60"), UnitPrice: dec("60")},
					{FarmerID: bashir.ID.String(), Quantity: dec("40"), UnitPrice: dec("55")},
				},
			}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ShipmentID)
		assert.True(t, resp.PurchaseTotal.Equal(dec("5000")))
		assert.True(t, resp.SalesTotal.Equal(dec("5800")))

		require.Len(t, f.purchases.rows, 2)
		for _, p := range f.purchases.rows {
			require.NotNil(t, p.ShipmentID)
			assert.Equal(t, int64(1), *p.ShipmentID)
			assert.True(t, p.TotalPaid.Equal(p.Quantity.Mul(p.UnitPrice)))
		}

		stored := f.shipments.shipments[1]
		require.Len(t, stored.Products, 1)
		assert.True(t, stored.Products[0].Subtotal.Equal(dec("5000")))
	})

	t.Run("incomplete allocation writes nothing", func(t *testing.T) {
		f := newShipmentFixture()
		tomatoes := f.products.add("Tomatoes")
		ali := f.farmers.add("Ali")

		_, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Products: []dto.ShipmentProductRequest{{
				ProductID: tomatoes.ID.String(),
				UnitPrice: dec("50"),
				Quantity:  dec("100"),
				Allocations: []dto.AllocationRequest{
					{FarmerID: ali.ID.String(), Quantity: dec("60"), UnitPrice: dec("60")},
				},
			}},
		})
		var ia *ledger.IncompleteAllocationError
		require.ErrorAs(t, err, &ia)
		assert.Equal(t, "Tomatoes", ia.Product)
		assert.Empty(t, f.shipments.shipments)
		assert.Empty(t, f.purchases.rows)
	})

	t.Run("over-allocation reports remaining", func(t *testing.T) {
		f := newShipmentFixture()
		tomatoes := f.products.add("Tomatoes")
		ali := f.farmers.add("Ali")
		bashir := f.farmers.add("Bashir")

		_, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Products: []dto.ShipmentProductRequest{{
				ProductID: tomatoes.ID.String(),
				UnitPrice: dec("50"),
				Quantity:  dec("100"),
				Allocations: []dto.AllocationRequest{
					{FarmerID: ali.ID.String(), Quantity: dec("60"), UnitPrice: dec("60")},
					{FarmerID: bashir.ID.String(), Quantity: dec("50"), UnitPrice: dec("60")},
				},
			}},
		})
		var oa *ledger.OverAllocationError
		require.ErrorAs(t, err, &oa)
		assert.True(t, oa.Remaining.Equal(dec("40")))
		assert.Empty(t, f.purchases.rows)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newShipmentFixture()
		f.farmers.add("Ali")

		_, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Products: []dto.ShipmentProductRequest{{
				ProductID: "3e0c8f9e-6f0f-4df7-9c2f-000000000000",
				UnitPrice: dec("50"),
				Quantity:  dec("100"),
			}},
		})
		var nf *ledger.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("unknown farmer", func(t *testing.T) {
		f := newShipmentFixture()
		tomatoes := f.products.add("Tomatoes")

		_, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Products: []dto.ShipmentProductRequest{{
				ProductID: tomatoes.ID.String(),
				UnitPrice: dec("50"),
				Quantity:  dec("100"),
				Allocations: []dto.AllocationRequest{
					{FarmerID: "3e0c8f9e-6f0f-4df7-9c2f-000000000000", Quantity: dec("100"), UnitPrice: dec("60")},
				},
			}},
		})
		var nf *ledger.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("duplicate product line rejected", func(t *testing.T) {
		f := newShipmentFixture()
		tomatoes := f.products.add("Tomatoes")
		ali := f.farmers.add("Ali")

		_, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Products: []dto.ShipmentProductRequest{
				{
					ProductID: tomatoes.ID.String(),
					UnitPrice: dec("50"),
					Quantity:  dec("100"),
					Allocations: []dto.AllocationRequest{
						{FarmerID: ali.ID.String(), Quantity: dec("100"), UnitPrice: dec("60")},
					},
				},
				{ProductID: tomatoes.ID.String(), UnitPrice: dec("55"), Quantity: dec("10")},
			},
		})
		assert.ErrorIs(t, err, ledger.ErrDuplicateProduct)
		assert.Empty(t, f.purchases.rows)
	})

	t.Run("storage failure surfaces as StorageError", func(t *testing.T) {
		f := newShipmentFixture()
		tomatoes := f.products.add("Tomatoes")
		ali := f.farmers.add("Ali")
		f.purchases.createErr = assert.AnError

		_, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Products: []dto.ShipmentProductRequest{{
				ProductID: tomatoes.ID.String(),
				UnitPrice: dec("50"),
				Quantity:  dec("100"),
				Allocations: []dto.AllocationRequest{
					{FarmerID: ali.ID.String(), Quantity: dec("100"), UnitPrice: dec("60")},
				},
			}},
		})
		var se *ledger.StorageError
		require.ErrorAs(t, err, &se)
	})
}

func TestShipmentDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newShipmentFixture()
		_, err := f.svc.Detail(ctx, 42)
		var nf *ledger.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("totals sum over lines", func(t *testing.T) {
		f := newShipmentFixture()
		tomatoes := f.products.add("Tomatoes")
		onions := f.products.add("Onions")
		ali := f.farmers.add("Ali")

		_, err := f.svc.Commit(ctx, dto.CreateShipmentRequest{
			Products: []dto.ShipmentProductRequest{
				{
					ProductID: tomatoes.ID.String(), UnitPrice: dec("50"), Quantity: dec("100"),
					Allocations: []dto.AllocationRequest{{FarmerID: ali.ID.String(), Quantity: dec("100"), UnitPrice: dec("60")}},
				},
				{
					ProductID: onions.ID.String(), UnitPrice: dec("20"), Quantity: dec("30"),
					Allocations: []dto.AllocationRequest{{FarmerID: ali.ID.String(), Quantity: dec("30"), UnitPrice: dec("25")}},
				},
			},
		})
		require.NoError(t, err)

		detail, err := f.svc.Detail(ctx, 1)
		require.NoError(t, err)
		require.Len(t, detail.Lines, 2)
		assert.True(t, detail.Total.Equal(dec("5600")))
	})
}
