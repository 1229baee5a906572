package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"legajos/internal/domain"
	"legajos/internal/extractor"
	"legajos/internal/port"
	"legajos/internal/store"
)

// EmployeeService is the reconciliation workflow: search the roster, open a
// working copy of one employee's records, edit it in isolation, and commit
// it back as an atomic replace-by-employee.
type EmployeeService interface {
	SearchNames(term string) []string
	Open(name string) ([]domain.LegalRecord, error)
	WorkingCopy(name string) ([]domain.LegalRecord, error)
	EditField(name string, recordID uuid.UUID, field domain.LegalField, value string) (*domain.LegalRecord, error)
	AppendRecord(ctx context.Context, name string, file port.ExtractInput) (*domain.LegalRecord, error)
	Commit(name string) error
	Close(name string)
	Summarize(name string) (*domain.EmployeeSummary, error)
}

type employeeService struct {
	store     *store.Store
	extractor port.Extractor

	mu      sync.Mutex
	working map[string][]domain.LegalRecord
}

// NewEmployeeService creates an EmployeeService implementation.
func NewEmployeeService(st *store.Store, ex port.Extractor) EmployeeService {
	return &employeeService{
		store:     st,
		extractor: ex,
		working:   make(map[string][]domain.LegalRecord),
	}
}

// SearchNames matches the term case-insensitively against the distinct
// roster of names, sorted. Empty term returns nothing.
func (s *employeeService) SearchNames(term string) []string {
	return s.store.SearchEmployeeNames(term)
}

// Open takes a fresh working copy of the employee's records. Re-opening
// discards any previous working copy for that name.
func (s *employeeService) Open(name string) ([]domain.LegalRecord, error) {
	records := s.store.LegalByEmployee(name)
	if len(records) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	s.mu.Lock()
	s.working[name] = records
	s.mu.Unlock()
	return copyRecords(records), nil
}

// WorkingCopy returns the current working copy for the employee.
func (s *employeeService) WorkingCopy(name string) ([]domain.LegalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.working[name]
	if !ok {
		return nil, domain.ErrNoWorkingCopy
	}
	return copyRecords(records), nil
}

// EditField mutates one field of one record in the working copy only. The
// shared store is untouched until Commit.
func (s *employeeService) EditField(name string, recordID uuid.UUID, field domain.LegalField, value string) (*domain.LegalRecord, error) {
	if !domain.EditableFields[field] {
		return nil, domain.ErrInvalidField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.working[name]
	if !ok {
		return nil, domain.ErrNoWorkingCopy
	}
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		switch field {
		case domain.FieldFecha:
			records[i].Fecha = value
		case domain.FieldTipoAntecedente:
			records[i].TipoAntecedente = value
		case domain.FieldResumen:
			records[i].Resumen = value
		case domain.FieldTextoCompleto:
			records[i].TextoCompleto = value
		}
		rec := records[i]
		return &rec, nil
	}
	return nil, domain.ErrRecordNotFound
}

// AppendRecord extracts a new document with the employee name pre-bound in
// the prompt, force-assigns the name onto the result, and appends it to the
// working copy only.
func (s *employeeService) AppendRecord(ctx context.Context, name string, file port.ExtractInput) (*domain.LegalRecord, error) {
	s.mu.Lock()
	_, ok := s.working[name]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNoWorkingCopy
	}

	prompt := extractor.BuildAntecedenteForEmployeePrompt(name)
	schema := extractor.AntecedenteForEmployeeSchema()

	raw, err := s.extractor.ExtractStructured(ctx, file, prompt, schema)
	if err != nil {
		return nil, err
	}

	var rec domain.LegalRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, domain.ErrExtractionFailed
	}
	rec.ID = uuid.New()
	rec.NombreCompleto = name // never trust the service for the join key
	rec.ArchivoOriginal = file.FileName

	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.working[name]
	if !ok {
		return nil, domain.ErrNoWorkingCopy
	}
	s.working[name] = append(records, rec)
	out := rec
	return &out, nil
}

// Commit replaces, in the shared store, every record of the employee with
// the working copy. The working copy stays open, so an unchanged re-commit
// leaves the store identical.
func (s *employeeService) Commit(name string) error {
	s.mu.Lock()
	records, ok := s.working[name]
	if !ok {
		s.mu.Unlock()
		return domain.ErrNoWorkingCopy
	}
	committed := copyRecords(records)
	s.mu.Unlock()

	s.store.ReplaceEmployee(name, committed)
	return nil
}

// Close discards the working copy without committing.
func (s *employeeService) Close(name string) {
	s.mu.Lock()
	delete(s.working, name)
	s.mu.Unlock()
}

// Summarize computes the employee's statistics fresh from the shared store,
// not the working copy. Unparseable dates are skipped, never an error.
func (s *employeeService) Summarize(name string) (*domain.EmployeeSummary, error) {
	records := s.store.LegalByEmployee(name)
	if len(records) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	groups := domain.GroupRecords(records)
	g := groups[0]
	return &domain.EmployeeSummary{
		NombreCompleto: name,
		Cantidad:       g.Count(),
		Tipos:          g.TiposJoined(),
		UltimaFecha:    g.UltimaFechaText(),
	}, nil
}

func copyRecords(records []domain.LegalRecord) []domain.LegalRecord {
	out := make([]domain.LegalRecord, len(records))
	copy(out, records)
	return out
}
