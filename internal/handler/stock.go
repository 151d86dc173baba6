package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"shipledger/internal/dto"
	"shipledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const stockCacheTTL = 30 * time.Second

// StockHandler serves the stock summary (cached) and the standalone write
// operations that move stock: direct sales, returns and transfers.
type StockHandler struct {
	catalog service.CatalogService
	ledger  service.LedgerService
	rdb     *redis.Client
}

func NewStockHandler(catalog service.CatalogService, ledger service.LedgerService, rdb *redis.Client) *StockHandler {
	return &StockHandler{catalog: catalog, ledger: ledger, rdb: rdb}
}

// GetStock returns the per-product stock summary. Cached in Redis with a
// short TTL; every stock-changing write deletes the key, so the TTL only
// bounds staleness when an invalidation is lost.
func (h *StockHandler) GetStock(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, service.StockCacheKey).Bytes(); err == nil {
			var resp dto.StockSummaryResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	products, err := h.catalog.ProductSummary(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.StockSummaryResponse{Products: products}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), service.StockCacheKey, b, stockCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) DirectSale(c *gin.Context) {
	var req dto.DirectSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ledger.RecordDirectSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StockHandler) Return(c *gin.Context) {
	var req dto.ReturnRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ledger.RecordReturn(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StockHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ledger.RecordTransfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
