package port

import (
	"context"
	"encoding/json"

	"legajos/internal/domain"
)

// ExtractInput carries one uploaded file for extraction.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
	FileName    string
}

// SchemaType enumerates the primitive shapes a response schema can describe.
type SchemaType string

const (
	TypeObject SchemaType = "OBJECT"
	TypeArray  SchemaType = "ARRAY"
	TypeString SchemaType = "STRING"
)

// Schema describes the output shape requested from the extraction service.
// It marshals directly into the service's responseSchema wire format and is
// also what the gateway validates the parsed response against before any
// typed record is built from it.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Extractor wraps every call to the external generative AI service.
// All methods share one failure contract: any network error, service error,
// or unparseable response comes back as an error wrapping
// domain.ErrExtractionFailed; no method ever returns a partial result.
type Extractor interface {
	// ExtractStructured sends the file with an instruction prompt and a
	// requested output shape, and returns the response validated against
	// the shape's required fields.
	ExtractStructured(ctx context.Context, input ExtractInput, prompt string, schema *Schema) (json.RawMessage, error)

	// ExtractText returns the raw full text of the file, unformatted.
	ExtractText(ctx context.Context, input ExtractInput) (string, error)

	// GenerateTemplate produces template text for the given document kind,
	// optionally steered by extra instructions. No file input.
	GenerateTemplate(ctx context.Context, kind, extra string) (string, error)

	// ExtractPlaceholders returns the ordered-unique list of {{name}}
	// placeholder names found in the template text; empty when none.
	ExtractPlaceholders(ctx context.Context, templateText string) ([]string, error)

	// LookupShipment resolves a tracking number into a ShipmentRecord.
	// The sender is pinned to domain.SenderName and the tracking number is
	// forced to echo the input, regardless of what the service returned.
	LookupShipment(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error)

	// Consult fires the expert-tier and general-tier calls concurrently and
	// returns the pair. Failure of either is failure of the whole.
	Consult(ctx context.Context, query string) (*domain.Consultation, error)
}
