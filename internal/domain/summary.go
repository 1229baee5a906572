package domain

import (
	"strings"
	"time"
)

// dateLayout is the DD/MM/YYYY layout every document date is written in.
const dateLayout = "02/01/2006"

// NoDate is reported when no record of a group has a parseable date.
const NoDate = "N/A"

// ParseRecordDate parses a DD/MM/YYYY document date. The second return is
// false for anything that is not a valid calendar date; callers skip those
// records rather than failing.
func ParseRecordDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatRecordDate renders a date back in DD/MM/YYYY.
func FormatRecordDate(t time.Time) string {
	return t.Format(dateLayout)
}

// EmployeeGroup is the derived per-employee projection over LegalRecords.
// It is recomputed on demand, never incrementally maintained.
type EmployeeGroup struct {
	NombreCompleto string        `json:"nombre_completo"`
	Records        []LegalRecord `json:"records"`
	Tipos          []string      `json:"tipos"`
	Archivos       []string      `json:"archivos"`
	UltimaFecha    *time.Time    `json:"-"`
}

// Count returns the number of records in the group.
func (g *EmployeeGroup) Count() int { return len(g.Records) }

// TiposJoined renders the distinct categories as a comma-joined string.
func (g *EmployeeGroup) TiposJoined() string { return strings.Join(g.Tipos, ", ") }

// UltimaFechaText renders the most recent parseable date, or NoDate.
func (g *EmployeeGroup) UltimaFechaText() string {
	if g.UltimaFecha == nil {
		return NoDate
	}
	return FormatRecordDate(*g.UltimaFecha)
}

// GroupRecords projects the record collection into per-employee groups,
// ordered by first appearance. Distinct categories keep first-seen order.
// Records with an empty name fall into the UnnamedEmployee bucket.
func GroupRecords(records []LegalRecord) []*EmployeeGroup {
	var order []string
	byName := make(map[string]*EmployeeGroup)

	for _, rec := range records {
		name := rec.NombreCompleto
		if name == "" {
			name = UnnamedEmployee
		}
		g, ok := byName[name]
		if !ok {
			g = &EmployeeGroup{NombreCompleto: name}
			byName[name] = g
			order = append(order, name)
		}
		g.Records = append(g.Records, rec)
		g.Archivos = append(g.Archivos, rec.ArchivoOriginal)

		seen := false
		for _, t := range g.Tipos {
			if t == rec.TipoAntecedente {
				seen = true
				break
			}
		}
		if !seen {
			g.Tipos = append(g.Tipos, rec.TipoAntecedente)
		}

		if d, ok := ParseRecordDate(rec.Fecha); ok {
			if g.UltimaFecha == nil || d.After(*g.UltimaFecha) {
				g.UltimaFecha = &d
			}
		}
	}

	groups := make([]*EmployeeGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, byName[name])
	}
	return groups
}
