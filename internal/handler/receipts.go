package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shipledger/internal/apierror"
	"shipledger/internal/infra"
	"shipledger/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReceiptsHandler renders shipment receipts as PDF. The two kinds cover the
// two sides of a shipment: what the warehouse paid the factory, and what each
// farmer owes for their share.
type ReceiptsHandler struct {
	shipments   repository.ShipmentRepository
	purchases   repository.PurchaseRepository
	storagePath string
}

func NewReceiptsHandler(shipments repository.ShipmentRepository, purchases repository.PurchaseRepository, storagePath string) *ReceiptsHandler {
	return &ReceiptsHandler{shipments: shipments, purchases: purchases, storagePath: storagePath}
}

// Get serves GET /v1/shipments/:id/receipt?kind=factory|farmer.
func (h *ReceiptsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid shipment id"))
		return
	}

	kind := c.DefaultQuery("kind", "factory")
	if kind != "factory" && kind != "farmer" {
		c.JSON(http.StatusBadRequest, apierror.New("kind must be factory or farmer"))
		return
	}

	ctx := c.Request.Context()
	shipment, err := h.shipments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("shipment not found"))
			return
		}
		respondError(c, err)
		return
	}

	var path string
	if kind == "factory" {
		path, err = infra.GenerateFactoryReceiptPDF(shipment, h.storagePath)
	} else {
		purchases, listErr := h.purchases.ListByShipment(ctx, id)
		if listErr != nil {
			respondError(c, listErr)
			return
		}
		path, err = infra.GenerateFarmerReceiptPDF(shipment, purchases, h.storagePath)
	}
	if err != nil {
		log.Error().Err(err).Int64("shipment_id", id).Str("kind", kind).Msg("receipt generation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Could not generate receipt"))
		return
	}

	c.FileAttachment(path, "shipment_"+strconv.FormatInt(id, 10)+"_"+kind+".pdf")
}
