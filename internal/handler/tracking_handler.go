package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"legajos/internal/domain"
	"legajos/internal/service"
	"legajos/internal/xlsxexport"
)

// TrackingHandler handles shipment tracking lookups and the lookup history.
type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

type lookupRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// Lookup handles POST /api/v1/shipments/lookup
// @Summary      Resolve one tracking number
// @Description  The result is prepended to the lookup history, newest first
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body body lookupRequest true "Tracking number"
// @Success      201 {object} APIResponse{data=domain.ShipmentRecord}
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /shipments/lookup [post]
func (h *TrackingHandler) Lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "tracking_number is required")
		return
	}

	rec, err := h.trackingService.Lookup(c.Request.Context(), req.TrackingNumber)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, rec)
}

// History handles GET /api/v1/shipments
// @Summary      Lookup history, newest first
// @Tags         shipments
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.ShipmentRecord}
// @Router       /shipments [get]
func (h *TrackingHandler) History(c *gin.Context) {
	records := h.trackingService.History()
	if records == nil {
		records = []domain.ShipmentRecord{}
	}
	RespondOK(c, records)
}

// Export handles GET /api/v1/shipments/export
// @Summary      Export the lookup history as a spreadsheet
// @Tags         shipments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} binary
// @Success      204 "No shipments to export"
// @Router       /shipments/export [get]
func (h *TrackingHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := xlsxexport.WriteShipments(&buf, h.trackingService.History()); err != nil {
		if errors.Is(err, domain.ErrNoRecords) {
			c.Status(http.StatusNoContent)
			return
		}
		HandleError(c, err)
		return
	}

	filename := xlsxexport.BuildFilename(domain.KindAndreani)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
