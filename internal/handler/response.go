package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"legajos/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "no records for that employee"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "RECORD_NOT_FOUND", "record not found in working copy"
	case errors.Is(err, domain.ErrNoWorkingCopy):
		return http.StatusConflict, "NO_WORKING_COPY", "open the employee before editing"
	case errors.Is(err, domain.ErrInvalidField):
		return http.StatusBadRequest, "INVALID_FIELD", "field is not editable; allowed: fecha, tipo_antecedente, resumen, texto_completo"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusBadGateway, "EXTRACTION_FAILED", "the extraction service could not process the request"
	case errors.Is(err, domain.ErrNoTemplate):
		return http.StatusConflict, "NO_TEMPLATE", "no active template; generate or upload one first"
	case errors.Is(err, domain.ErrUnknownPlaceholder):
		return http.StatusBadRequest, "UNKNOWN_PLACEHOLDER", "placeholder not present in the analyzed template"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, doc, docx, odt, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrEmptyTrackingNumber):
		return http.StatusBadRequest, "EMPTY_TRACKING_NUMBER", "tracking number is required"
	case errors.Is(err, domain.ErrEmptyQuery):
		return http.StatusBadRequest, "EMPTY_QUERY", "consultation query is required"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
