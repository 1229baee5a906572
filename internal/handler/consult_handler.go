package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legajos/internal/service"
)

// ConsultHandler handles free-text consultation queries.
type ConsultHandler struct {
	consultService service.ConsultService
}

// NewConsultHandler creates a new ConsultHandler.
func NewConsultHandler(consultService service.ConsultService) *ConsultHandler {
	return &ConsultHandler{consultService: consultService}
}

type consultRequest struct {
	Query string `json:"query" binding:"required"`
}

// Consult handles POST /api/v1/consult
// @Summary      Answer a free-text query with a paired expert and general response
// @Tags         consult
// @Accept       json
// @Produce      json
// @Param        body body consultRequest true "Query text"
// @Success      200 {object} APIResponse{data=domain.Consultation}
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /consult [post]
func (h *ConsultHandler) Consult(c *gin.Context) {
	var req consultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "query is required")
		return
	}

	result, err := h.consultService.Consult(c.Request.Context(), req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
