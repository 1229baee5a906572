package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"legajos/internal/domain"
	"legajos/internal/port"
)

// MockExtractor is a mock implementation of port.Extractor.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractStructured(ctx context.Context, input port.ExtractInput, prompt string, schema *port.Schema) (json.RawMessage, error) {
	args := m.Called(ctx, input, prompt, schema)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockExtractor) ExtractText(ctx context.Context, input port.ExtractInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockExtractor) GenerateTemplate(ctx context.Context, kind, extra string) (string, error) {
	args := m.Called(ctx, kind, extra)
	return args.String(0), args.Error(1)
}

func (m *MockExtractor) ExtractPlaceholders(ctx context.Context, templateText string) ([]string, error) {
	args := m.Called(ctx, templateText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockExtractor) LookupShipment(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShipmentRecord), args.Error(1)
}

func (m *MockExtractor) Consult(ctx context.Context, query string) (*domain.Consultation, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consultation), args.Error(1)
}
