package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"legajos/internal/domain"
	"legajos/internal/extractor"
	"legajos/internal/port"
	"legajos/internal/store"
)

// FileOutcome reports what happened to one file of an ingest batch.
type FileOutcome struct {
	FileName string              `json:"file_name"`
	OK       bool                `json:"ok"`
	Error    string              `json:"error,omitempty"`
	Record   *domain.LegalRecord `json:"record,omitempty"`
}

// IngestResult summarizes one batch ingestion.
type IngestResult struct {
	Outcomes  []FileOutcome `json:"outcomes"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

// IngestService runs batch extraction of disciplinary documents into the
// record store.
type IngestService interface {
	Ingest(ctx context.Context, files []port.ExtractInput) (*IngestResult, error)
}

type ingestService struct {
	store     *store.Store
	extractor port.Extractor
}

// NewIngestService creates an IngestService implementation.
func NewIngestService(st *store.Store, ex port.Extractor) IngestService {
	return &ingestService{store: st, extractor: ex}
}

// Ingest processes files strictly one at a time: a single in-flight call
// keeps progress meaningful and avoids hammering the extraction service
// with parallel requests. Files that fail extraction are dropped from the
// stored batch; the per-file outcome carries the failure back to the caller.
// The whole batch is appended to the store after all previously stored
// records, in completion order.
func (s *ingestService) Ingest(ctx context.Context, files []port.ExtractInput) (*IngestResult, error) {
	prompt := extractor.BuildAntecedentePrompt()
	schema := extractor.AntecedenteSchema()

	result := &IngestResult{}
	var batch []domain.LegalRecord

	for _, file := range files {
		raw, err := s.extractor.ExtractStructured(ctx, file, prompt, schema)
		if err != nil {
			log.Printf("ingest: extraction failed for %s: %v", file.FileName, err)
			result.Outcomes = append(result.Outcomes, FileOutcome{FileName: file.FileName, Error: err.Error()})
			result.Failed++
			continue
		}

		var rec domain.LegalRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("ingest: malformed extraction result for %s: %v", file.FileName, err)
			result.Outcomes = append(result.Outcomes, FileOutcome{FileName: file.FileName, Error: domain.ErrExtractionFailed.Error()})
			result.Failed++
			continue
		}

		rec.ID = uuid.New()
		rec.ArchivoOriginal = file.FileName
		batch = append(batch, rec)
		stored := rec
		result.Outcomes = append(result.Outcomes, FileOutcome{FileName: file.FileName, OK: true, Record: &stored})
		result.Succeeded++
	}

	if len(batch) > 0 {
		s.store.AppendLegal(batch...)
	}
	return result, nil
}
