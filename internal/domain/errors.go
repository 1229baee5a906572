package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrExtractionFailed    = errors.New("extraction service failed")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrRecordNotFound      = errors.New("record not found")
	ErrNoWorkingCopy       = errors.New("no working copy open for employee")
	ErrInvalidField        = errors.New("field is not editable")
	ErrNoTemplate          = errors.New("no active template")
	ErrUnknownPlaceholder  = errors.New("placeholder not present in template")
	ErrNoRecords           = errors.New("no records to export")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyTrackingNumber = errors.New("tracking number is empty")
	ErrEmptyQuery          = errors.New("consultation query is empty")
)
