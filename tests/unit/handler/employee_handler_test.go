package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legajos/internal/domain"
	"legajos/internal/handler"
	"legajos/internal/service"
	"legajos/internal/store"
	"legajos/mocks"
)

func employeeRouter(st *store.Store) *gin.Engine {
	h := handler.NewEmployeeHandler(service.NewEmployeeService(st, new(mocks.MockExtractor)), 25)
	r := gin.New()
	r.GET("/employees", h.Search)
	r.POST("/employees/:name/working-copy", h.Open)
	r.GET("/employees/:name/working-copy", h.WorkingCopy)
	r.DELETE("/employees/:name/working-copy", h.Close)
	r.PATCH("/employees/:name/working-copy/:recordId", h.EditField)
	r.POST("/employees/:name/commit", h.Commit)
	r.GET("/employees/:name/summary", h.Summary)
	return r
}

func storedRecord(nombre string) domain.LegalRecord {
	return domain.LegalRecord{
		ID:              uuid.New(),
		NombreCompleto:  nombre,
		Fecha:           "10/01/2023",
		TipoAntecedente: "Suspensión",
		Resumen:         "resumen",
	}
}

func TestEmployeeHandler_Search(t *testing.T) {
	st := store.New()
	st.AppendLegal(storedRecord("Juan Pérez"), storedRecord("Ana Gómez"))

	req := httptest.NewRequest(http.MethodGet, "/employees?search=juan", http.NoBody)
	w := httptest.NewRecorder()
	employeeRouter(st).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Juan Pérez"}, resp.Data)
}

func TestEmployeeHandler_Search_EmptyTermReturnsEmptyList(t *testing.T) {
	st := store.New()
	st.AppendLegal(storedRecord("Juan Pérez"))

	req := httptest.NewRequest(http.MethodGet, "/employees", http.NoBody)
	w := httptest.NewRecorder()
	employeeRouter(st).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestEmployeeHandler_Open_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/employees/Nadie/working-copy", http.NoBody)
	w := httptest.NewRecorder()
	employeeRouter(store.New()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "EMPLOYEE_NOT_FOUND")
}

func TestEmployeeHandler_EditAndCommitFlow(t *testing.T) {
	st := store.New()
	rec := storedRecord("Juan Pérez")
	st.AppendLegal(rec)
	r := employeeRouter(st)
	name := url.PathEscape("Juan Pérez")

	// Open the working copy
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees/"+name+"/working-copy", http.NoBody))
	require.Equal(t, http.StatusCreated, w.Code)

	// Edit one field
	body := strings.NewReader(`{"field":"resumen","value":"corregido"}`)
	req := httptest.NewRequest(http.MethodPatch, "/employees/"+name+"/working-copy/"+rec.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The store still holds the original until commit
	assert.Equal(t, "resumen", st.LegalByEmployee("Juan Pérez")[0].Resumen)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees/"+name+"/commit", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "corregido", st.LegalByEmployee("Juan Pérez")[0].Resumen)
}

func TestEmployeeHandler_EditField_InvalidUUID(t *testing.T) {
	st := store.New()
	st.AppendLegal(storedRecord("Juan Pérez"))
	r := employeeRouter(st)
	name := url.PathEscape("Juan Pérez")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees/"+name+"/working-copy", http.NoBody))
	require.Equal(t, http.StatusCreated, w.Code)

	body := strings.NewReader(`{"field":"resumen","value":"x"}`)
	req := httptest.NewRequest(http.MethodPatch, "/employees/"+name+"/working-copy/not-a-uuid", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_RECORD_ID")
}

func TestEmployeeHandler_EditField_NoWorkingCopy(t *testing.T) {
	st := store.New()
	rec := storedRecord("Juan Pérez")
	st.AppendLegal(rec)
	name := url.PathEscape("Juan Pérez")

	body := strings.NewReader(`{"field":"resumen","value":"x"}`)
	req := httptest.NewRequest(http.MethodPatch, "/employees/"+name+"/working-copy/"+rec.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	employeeRouter(st).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "NO_WORKING_COPY")
}

func TestEmployeeHandler_Summary(t *testing.T) {
	st := store.New()
	st.AppendLegal(storedRecord("Juan Pérez"), storedRecord("Juan Pérez"))
	name := url.PathEscape("Juan Pérez")

	req := httptest.NewRequest(http.MethodGet, "/employees/"+name+"/summary", http.NoBody)
	w := httptest.NewRecorder()
	employeeRouter(st).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data domain.EmployeeSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Cantidad)
	assert.Equal(t, "10/01/2023", resp.Data.UltimaFecha)
}
