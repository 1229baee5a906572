package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"legajos/internal/domain"
	"legajos/internal/port"
	"legajos/internal/service"
	"legajos/internal/store"
	"legajos/internal/xlsxexport"
)

// RecordHandler handles disciplinary-record ingestion, listing and export.
type RecordHandler struct {
	ingestService service.IngestService
	store         *store.Store
	maxFileSizeMB int64
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(ingestService service.IngestService, st *store.Store, maxFileSizeMB int64) *RecordHandler {
	return &RecordHandler{ingestService: ingestService, store: st, maxFileSizeMB: maxFileSizeMB}
}

// Ingest handles POST /api/v1/records/ingest
// @Summary      Batch ingest disciplinary documents
// @Description  Extracts structured records from the uploaded files, one at a time
// @Tags         records
// @Accept       multipart/form-data
// @Produce      json
// @Param        files formData file true "Documents to process (repeatable)"
// @Success      200 {object} APIResponse{data=service.IngestResult}
// @Failure      400 {object} APIResponse
// @Router       /records/ingest [post]
func (h *RecordHandler) Ingest(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "at least one file is required")
		return
	}

	batch := make([]port.ExtractInput, 0, len(headers))
	for _, header := range headers {
		input, err := readUpload(header, h.maxFileSizeMB)
		if err != nil {
			HandleError(c, err)
			return
		}
		batch = append(batch, input)
	}

	result, err := h.ingestService.Ingest(c.Request.Context(), batch)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// List handles GET /api/v1/records
// @Summary      List all stored disciplinary records
// @Tags         records
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.LegalRecord}
// @Router       /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	RespondOK(c, h.store.Legal())
}

// Folders handles GET /api/v1/records/folders
// @Summary      Per-employee virtual folders
// @Description  Records grouped by employee name, sorted
// @Tags         records
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.EmployeeGroup}
// @Router       /records/folders [get]
func (h *RecordHandler) Folders(c *gin.Context) {
	groups := domain.GroupRecords(h.store.Legal())
	// Folder listing is alphabetical, unlike the export summary which
	// keeps first-appearance order.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].NombreCompleto < groups[j].NombreCompleto
	})
	RespondOK(c, groups)
}

// DownloadText handles GET /api/v1/records/:id/text
// @Summary      Download one record's full extracted text
// @Tags         records
// @Produce      text/plain
// @Param        id path string true "Record ID"
// @Success      200 {string} string
// @Failure      404 {object} APIResponse
// @Router       /records/{id}/text [get]
func (h *RecordHandler) DownloadText(c *gin.Context) {
	rec, ok := h.store.LegalByID(c.Param("id"))
	if !ok {
		HandleError(c, domain.ErrRecordNotFound)
		return
	}

	name := strings.TrimSuffix(rec.ArchivoOriginal, filepath.Ext(rec.ArchivoOriginal)) + ".txt"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(rec.TextoCompleto))
}

// Export handles GET /api/v1/records/export
// @Summary      Download the disciplinary-record spreadsheet report
// @Description  Data sheet plus per-employee summary sheet; 204 when the store is empty
// @Tags         records
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} file
// @Success      204 "no records"
// @Router       /records/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	err := xlsxexport.WriteLegal(&buf, h.store.Legal())
	if errors.Is(err, domain.ErrNoRecords) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := xlsxexport.BuildFilename(domain.KindAntecedentes)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
