package handler

import (
	"net/http"

	"shipledger/internal/dto"
	"shipledger/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves product and farmer creation plus their summary lists.
type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	resp, err := h.svc.ProductSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateFarmer(c *gin.Context) {
	var req dto.CreateFarmerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateFarmer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogHandler) ListFarmers(c *gin.Context) {
	resp, err := h.svc.FarmerSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
