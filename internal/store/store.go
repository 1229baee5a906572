// Package store holds the in-memory record collections for one server
// session. The original tool kept these in UI state with single-threaded
// scheduling as its only correctness guarantee; here every mutation is
// guarded by an explicit lock because handlers run on concurrent goroutines.
package store

import (
	"sort"
	"strings"
	"sync"

	"legajos/internal/domain"
)

// Store is the shared in-memory record store. Legal records are an ordered
// append collection; shipment records are an append-only history with newest
// first. Neither collection survives a restart.
type Store struct {
	mu        sync.RWMutex
	legal     []domain.LegalRecord
	shipments []domain.ShipmentRecord
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// AppendLegal appends a batch of legal records after all previously stored
// records, preserving batch order.
func (s *Store) AppendLegal(records ...domain.LegalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.legal = append(s.legal, records...)
}

// Legal returns a copy of all legal records in store order.
func (s *Store) Legal() []domain.LegalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LegalRecord, len(s.legal))
	copy(out, s.legal)
	return out
}

// LegalCount returns the number of stored legal records.
func (s *Store) LegalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.legal)
}

// LegalByEmployee returns a copy of every record whose name exactly equals
// the given name, in store order.
func (s *Store) LegalByEmployee(name string) []domain.LegalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.LegalRecord
	for _, rec := range s.legal {
		if rec.NombreCompleto == name {
			out = append(out, rec)
		}
	}
	return out
}

// LegalByID returns the record with the given identifier, if stored.
func (s *Store) LegalByID(id string) (domain.LegalRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.legal {
		if rec.ID.String() == id {
			return rec, true
		}
	}
	return domain.LegalRecord{}, false
}

// ReplaceEmployee atomically replaces every record whose name equals name
// with the given records: records for other employees keep their relative
// order, and the replacement set is appended after them. A record absent
// from the replacement set disappears from the store.
func (s *Store) ReplaceEmployee(name string, records []domain.LegalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]domain.LegalRecord, 0, len(s.legal))
	for _, rec := range s.legal {
		if rec.NombreCompleto != name {
			kept = append(kept, rec)
		}
	}
	s.legal = append(kept, records...)
}

// EmployeeNames returns the distinct employee names seen in the store,
// sorted lexicographically.
func (s *Store) EmployeeNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var names []string
	for _, rec := range s.legal {
		if !seen[rec.NombreCompleto] {
			seen[rec.NombreCompleto] = true
			names = append(names, rec.NombreCompleto)
		}
	}
	sort.Strings(names)
	return names
}

// SearchEmployeeNames returns the sorted distinct names containing the term
// (case-insensitive). An empty term returns no names: there is no browse-all
// affordance through search.
func (s *Store) SearchEmployeeNames(term string) []string {
	if term == "" {
		return nil
	}
	lower := strings.ToLower(term)
	var out []string
	for _, name := range s.EmployeeNames() {
		if strings.Contains(strings.ToLower(name), lower) {
			out = append(out, name)
		}
	}
	return out
}

// PrependShipment adds a lookup result to the front of the shipment history.
func (s *Store) PrependShipment(rec domain.ShipmentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments = append([]domain.ShipmentRecord{rec}, s.shipments...)
}

// Shipments returns a copy of the shipment history, newest first.
func (s *Store) Shipments() []domain.ShipmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ShipmentRecord, len(s.shipments))
	copy(out, s.shipments)
	return out
}
