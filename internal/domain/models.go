package domain

import (
	"github.com/google/uuid"
)

// SenderName is the fixed sender for every tracked carta documento.
// The extraction service is never trusted for this field; the gateway
// overwrites whatever it returns.
const SenderName = "Sapac.SA / Fiorasi"

// UnnamedEmployee is the grouping bucket for records whose employee
// name came back empty from extraction.
const UnnamedEmployee = "SIN NOMBRE"

// LegalRecord represents one disciplinary document extracted for one employee.
// NombreCompleto is the de facto grouping key: case-sensitive, exact match.
// Two people with the same spelled name are merged by every downstream view;
// this is a documented limitation, not something the store corrects.
type LegalRecord struct {
	ID              uuid.UUID `json:"id"`
	NombreCompleto  string    `json:"nombre_completo"`
	Fecha           string    `json:"fecha"`
	TipoAntecedente string    `json:"tipo_antecedente"`
	Resumen         string    `json:"resumen"`
	TextoCompleto   string    `json:"texto_completo"`
	ArchivoOriginal string    `json:"archivo_original"`
}

// ShipmentRecord represents one tracking-number lookup result.
// Records are prepended to an append-only history and never mutated.
type ShipmentRecord struct {
	Destinatario      string `json:"destinatario"`
	Remitente         string `json:"remitente"`
	FechaEnvio        string `json:"fecha_envio"`
	FechaEntrega      string `json:"fecha_entrega"`
	NumeroSeguimiento string `json:"numero_seguimiento"`
	Situacion         string `json:"situacion"`
}

// Consultation pairs the expert-tier and general-tier answers to one query.
// A pairing only exists when both calls succeeded.
type Consultation struct {
	ExpertResponse  string `json:"expert_response"`
	GeneralResponse string `json:"general_response"`
}

// EmployeeSummary holds the per-employee statistics shown in the edit panel.
type EmployeeSummary struct {
	NombreCompleto string `json:"nombre_completo"`
	Cantidad       int    `json:"cantidad"`
	Tipos          string `json:"tipos"`
	UltimaFecha    string `json:"ultima_fecha"`
}

// CalendarEvent is one entry on the office calendar, keyed externally by
// its ISO date string.
type CalendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// ThemeColors holds the UI color palette.
type ThemeColors struct {
	Primary      string `json:"primary"`
	Secondary    string `json:"secondary"`
	Background   string `json:"background"`
	Text         string `json:"text"`
	PrimaryLight string `json:"primary_light"`
	Border       string `json:"border"`
}

// Theme is the persisted UI theme: palette plus base font size.
type Theme struct {
	Colors   ThemeColors `json:"colors"`
	FontSize int         `json:"font_size"`
}

// DefaultTheme returns the theme used when nothing has been persisted yet.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: ThemeColors{
			Primary:      "#1e40af",
			Secondary:    "#eff6ff",
			Background:   "#f9fafb",
			Text:         "#111827",
			PrimaryLight: "#dbeafe",
			Border:       "#e5e7eb",
		},
		FontSize: 16,
	}
}
