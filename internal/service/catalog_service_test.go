package service_test

import (
	"context"
	"testing"

	"shipledger/internal/dto"
	"shipledger/internal/ledger"
	"shipledger/internal/repository"
	"shipledger/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		products := newStubProductRepo()
		svc := service.NewCatalogService(products, newStubFarmerRepo())

		resp, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Tomatoes"})
		require.NoError(t, err)
		assert.Equal(t, "Tomatoes", resp.Name)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		products := newStubProductRepo()
		svc := service.NewCatalogService(products, newStubFarmerRepo())

		resp, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "  Tomatoes  "})
		require.NoError(t, err)
		assert.Equal(t, "Tomatoes", resp.Name)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := service.NewCatalogService(newStubProductRepo(), newStubFarmerRepo())
		_, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "   "})
		var ve *ledger.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		products := newStubProductRepo()
		products.add("Tomatoes")
		svc := service.NewCatalogService(products, newStubFarmerRepo())

		_, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Tomatoes"})
		var de *ledger.DuplicateError
		require.ErrorAs(t, err, &de)
	})
}

func TestCreateFarmer(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		svc := service.NewCatalogService(newStubProductRepo(), newStubFarmerRepo())
		resp, err := svc.CreateFarmer(ctx, dto.CreateFarmerRequest{Name: "Ali"})
		require.NoError(t, err)
		assert.Equal(t, "Ali", resp.Name)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		farmers := newStubFarmerRepo()
		farmers.add("Ali")
		svc := service.NewCatalogService(newStubProductRepo(), farmers)

		_, err := svc.CreateFarmer(ctx, dto.CreateFarmerRequest{Name: "Ali"})
		var de *ledger.DuplicateError
		require.ErrorAs(t, err, &de)
	})
}

func TestProductSummaryDerivesStock(t *testing.T) {
	ctx := context.Background()

	t.Run("no activity reports zeroes", func(t *testing.T) {
		products := newStubProductRepo()
		products.add("Tomatoes")
		svc := service.NewCatalogService(products, newStubFarmerRepo())

		rows, err := svc.ProductSummary(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].TotalBought.IsZero())
		assert.True(t, rows[0].CurrentStock.IsZero())
	})

	t.Run("current stock = bought - sold - returned", func(t *testing.T) {
		products := newStubProductRepo()
		p := products.add("Tomatoes")
		products.aggregates = []repository.ProductAggregate{{
			ID:            p.ID,
			Name:          p.Name,
			TotalBought:   dec("100"),
			TotalCost:     dec("5000"),
			TotalSold:     dec("60"),
			TotalReturned: dec("10"),
		}}
		svc := service.NewCatalogService(products, newStubFarmerRepo())

		rows, err := svc.ProductSummary(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].CurrentStock.Equal(dec("30")), "stock = %s", rows[0].CurrentStock)
	})

	t.Run("negative stock reported as-is", func(t *testing.T) {
		products := newStubProductRepo()
		p := products.add("Tomatoes")
		products.aggregates = []repository.ProductAggregate{{
			ID:        p.ID,
			Name:      p.Name,
			TotalSold: dec("10"),
		}}
		svc := service.NewCatalogService(products, newStubFarmerRepo())

		rows, err := svc.ProductSummary(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].CurrentStock.Equal(dec("-10")))
	})
}
