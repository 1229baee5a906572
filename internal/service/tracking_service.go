package service

import (
	"context"
	"strings"

	"legajos/internal/domain"
	"legajos/internal/port"
	"legajos/internal/store"
)

// TrackingService resolves tracking numbers and keeps the append-only
// lookup history.
type TrackingService interface {
	Lookup(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error)
	History() []domain.ShipmentRecord
}

type trackingService struct {
	store     *store.Store
	extractor port.Extractor
}

// NewTrackingService creates a TrackingService implementation.
func NewTrackingService(st *store.Store, ex port.Extractor) TrackingService {
	return &trackingService{store: st, extractor: ex}
}

// Lookup resolves one tracking number and prepends the result to the
// history. Results are never mutated or removed afterwards.
func (s *trackingService) Lookup(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, domain.ErrEmptyTrackingNumber
	}

	rec, err := s.extractor.LookupShipment(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	s.store.PrependShipment(*rec)
	return rec, nil
}

// History returns the lookup history, newest first.
func (s *trackingService) History() []domain.ShipmentRecord {
	return s.store.Shipments()
}
