package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legajos/internal/domain"
	"legajos/internal/service"
)

// EmployeeHandler handles the reconciliation endpoints: search, working
// copy lifecycle, and commit.
type EmployeeHandler struct {
	employeeService service.EmployeeService
	maxFileSizeMB   int64
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService, maxFileSizeMB int64) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, maxFileSizeMB: maxFileSizeMB}
}

// editFieldRequest is the body for PATCH working-copy record edits.
type editFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// Search handles GET /api/v1/employees?search=term
// @Summary      Search employee names
// @Description  Case-insensitive substring match over the distinct roster; empty term returns nothing
// @Tags         employees
// @Produce      json
// @Param        search query string false "Search term"
// @Success      200 {object} APIResponse{data=[]string}
// @Router       /employees [get]
func (h *EmployeeHandler) Search(c *gin.Context) {
	names := h.employeeService.SearchNames(c.Query("search"))
	if names == nil {
		names = []string{}
	}
	RespondOK(c, names)
}

// Open handles POST /api/v1/employees/:name/working-copy
// @Summary      Open a working copy of one employee's records
// @Tags         employees
// @Produce      json
// @Param        name path string true "Employee name (exact)"
// @Success      201 {object} APIResponse{data=[]domain.LegalRecord}
// @Failure      404 {object} APIResponse
// @Router       /employees/{name}/working-copy [post]
func (h *EmployeeHandler) Open(c *gin.Context) {
	records, err := h.employeeService.Open(c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, records)
}

// WorkingCopy handles GET /api/v1/employees/:name/working-copy
// @Summary      Current working copy
// @Tags         employees
// @Produce      json
// @Param        name path string true "Employee name"
// @Success      200 {object} APIResponse{data=[]domain.LegalRecord}
// @Failure      409 {object} APIResponse
// @Router       /employees/{name}/working-copy [get]
func (h *EmployeeHandler) WorkingCopy(c *gin.Context) {
	records, err := h.employeeService.WorkingCopy(c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, records)
}

// EditField handles PATCH /api/v1/employees/:name/working-copy/:recordId
// @Summary      Edit one field of a working-copy record
// @Description  Mutates the working copy only; the store is untouched until commit
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        name path string true "Employee name"
// @Param        recordId path string true "Record ID"
// @Param        body body editFieldRequest true "Field and value"
// @Success      200 {object} APIResponse{data=domain.LegalRecord}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /employees/{name}/working-copy/{recordId} [patch]
func (h *EmployeeHandler) EditField(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_RECORD_ID", "record id must be a valid UUID")
		return
	}

	var req editFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "field is required")
		return
	}

	rec, err := h.employeeService.EditField(c.Param("name"), recordID, domain.LegalField(req.Field), req.Value)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// AppendRecord handles POST /api/v1/employees/:name/working-copy/records
// @Summary      Extract a new document into the working copy
// @Description  The employee name is pre-bound in the prompt and force-assigned on the result
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Param        name path string true "Employee name"
// @Param        file formData file true "Document to process"
// @Success      201 {object} APIResponse{data=domain.LegalRecord}
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /employees/{name}/working-copy/records [post]
func (h *EmployeeHandler) AppendRecord(c *gin.Context) {
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

	rec, err := h.employeeService.AppendRecord(c.Request.Context(), c.Param("name"), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, rec)
}

// Commit handles POST /api/v1/employees/:name/commit
// @Summary      Commit the working copy
// @Description  Atomically replaces the employee's records in the store with the working copy
// @Tags         employees
// @Produce      json
// @Param        name path string true "Employee name"
// @Success      200 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /employees/{name}/commit [post]
func (h *EmployeeHandler) Commit(c *gin.Context) {
	if err := h.employeeService.Commit(c.Param("name")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"committed": true})
}

// Close handles DELETE /api/v1/employees/:name/working-copy
// @Summary      Discard the working copy without committing
// @Tags         employees
// @Produce      json
// @Param        name path string true "Employee name"
// @Success      200 {object} APIResponse
// @Router       /employees/{name}/working-copy [delete]
func (h *EmployeeHandler) Close(c *gin.Context) {
	h.employeeService.Close(c.Param("name"))
	RespondOK(c, gin.H{"closed": true})
}

// Summary handles GET /api/v1/employees/:name/summary
// @Summary      Per-employee statistics
// @Description  Count, distinct categories and most recent parseable date, computed from the shared store
// @Tags         employees
// @Produce      json
// @Param        name path string true "Employee name"
// @Success      200 {object} APIResponse{data=domain.EmployeeSummary}
// @Failure      404 {object} APIResponse
// @Router       /employees/{name}/summary [get]
func (h *EmployeeHandler) Summary(c *gin.Context) {
	summary, err := h.employeeService.Summarize(c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}
