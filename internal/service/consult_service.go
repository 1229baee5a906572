package service

import (
	"context"
	"strings"

	"legajos/internal/domain"
	"legajos/internal/port"
)

// ConsultService answers free-text queries with a paired expert/general
// response. It shares only the extraction gateway with the template
// pipeline; no template state is read or written.
type ConsultService interface {
	Consult(ctx context.Context, query string) (*domain.Consultation, error)
}

type consultService struct {
	extractor port.Extractor
}

// NewConsultService creates a ConsultService implementation.
func NewConsultService(ex port.Extractor) ConsultService {
	return &consultService{extractor: ex}
}

func (s *consultService) Consult(ctx context.Context, query string) (*domain.Consultation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	return s.extractor.Consult(ctx, query)
}
