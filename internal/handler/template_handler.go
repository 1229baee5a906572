package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"legajos/internal/service"
)

// TemplateHandler handles the document template endpoints: acquire, analyze,
// answer, render and download.
type TemplateHandler struct {
	templateService service.TemplateService
	maxFileSizeMB   int64
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService, maxFileSizeMB int64) *TemplateHandler {
	return &TemplateHandler{templateService: templateService, maxFileSizeMB: maxFileSizeMB}
}

type generateTemplateRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Extra string `json:"extra"`
}

type setTextRequest struct {
	Text string `json:"text"`
}

type setAnswerRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

// Generate handles POST /api/v1/template/generate
// @Summary      Generate a fresh template of the given kind
// @Tags         template
// @Accept       json
// @Produce      json
// @Param        body body generateTemplateRequest true "Template kind and extra instructions"
// @Success      201 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /template/generate [post]
func (h *TemplateHandler) Generate(c *gin.Context) {
	var req generateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "kind is required")
		return
	}

	text, err := h.templateService.Generate(c.Request.Context(), req.Kind, req.Extra)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"text": text})
}

// Upload handles POST /api/v1/template/upload
// @Summary      Use an uploaded document as the template
// @Description  The file's full text is extracted verbatim and becomes the active template
// @Tags         template
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Template document"
// @Success      201 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /template/upload [post]
func (h *TemplateHandler) Upload(c *gin.Context) {
	_, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}

	input, err := readUpload(header, h.maxFileSizeMB)
	if err != nil {
		HandleError(c, err)
		return
	}

	text, err := h.templateService.Upload(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"text": text})
}

// Get handles GET /api/v1/template
// @Summary      Current template state
// @Tags         template
// @Produce      json
// @Success      200 {object} APIResponse{data=service.TemplateState}
// @Router       /template [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	RespondOK(c, h.templateService.State())
}

// SetText handles PUT /api/v1/template/text
// @Summary      Replace the template text with a hand edit
// @Tags         template
// @Accept       json
// @Produce      json
// @Param        body body setTextRequest true "New template text"
// @Success      200 {object} APIResponse
// @Router       /template/text [put]
func (h *TemplateHandler) SetText(c *gin.Context) {
	var req setTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if err := h.templateService.SetText(req.Text); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

// Analyze handles POST /api/v1/template/analyze
// @Summary      Discover the placeholders of the current template
// @Description  Every placeholder gets an empty answer slot; previous answers are discarded
// @Tags         template
// @Produce      json
// @Success      200 {object} APIResponse{data=[]string}
// @Failure      409 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /template/analyze [post]
func (h *TemplateHandler) Analyze(c *gin.Context) {
	names, err := h.templateService.Analyze(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	RespondOK(c, names)
}

// SetAnswer handles PUT /api/v1/template/answers
// @Summary      Record the value of one analyzed placeholder
// @Tags         template
// @Accept       json
// @Produce      json
// @Param        body body setAnswerRequest true "Placeholder name and value"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /template/answers [put]
func (h *TemplateHandler) SetAnswer(c *gin.Context) {
	var req setAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}
	if err := h.templateService.SetAnswer(req.Name, req.Value); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

// Render handles GET /api/v1/template/render
// @Summary      Render the template with the answered placeholders
// @Description  Tokens whose answer is still empty stay in the output verbatim
// @Tags         template
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /template/render [get]
func (h *TemplateHandler) Render(c *gin.Context) {
	text, err := h.templateService.Render()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"text": text})
}

// Download handles GET /api/v1/template/download
// @Summary      Download the rendered document as a text file
// @Tags         template
// @Produce      plain
// @Success      200 {file} string
// @Failure      409 {object} APIResponse
// @Router       /template/download [get]
func (h *TemplateHandler) Download(c *gin.Context) {
	text, err := h.templateService.Render()
	if err != nil {
		HandleError(c, err)
		return
	}

	kind := strings.ReplaceAll(h.templateService.Kind(), " ", "_")
	filename := fmt.Sprintf("%s_%s.txt", kind, time.Now().Format("2006-01-02"))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
