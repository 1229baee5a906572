// Package xlsxexport serializes the record collections into spreadsheet
// reports: one data sheet per record kind, plus a per-employee summary
// sheet for disciplinary records.
package xlsxexport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"legajos/internal/domain"
)

const (
	legalSheet    = "Antecedentes"
	summarySheet  = "Resumen por Persona"
	shipmentSheet = "Cartas Andreani"

	// minColWidth is the floor for auto-sized columns.
	minColWidth = 10
)

var legalColumns = []string{
	"Apellido y Nombre",
	"Fecha",
	"Tipo de Antecedente",
	"Resumen",
	"Archivo Original",
}

var summaryColumns = []string{
	"Apellido y Nombre",
	"Cantidad de Antecedentes",
	"Tipos de Antecedentes",
	"Última Fecha",
	"Archivos",
}

var shipmentColumns = []string{
	"Apellido y Nombre",
	"Remitente",
	"Fecha de Envío",
	"Fecha de Entrega",
	"N° Seguimiento",
	"Situación",
}

// WriteLegal writes the disciplinary-record report: the data sheet plus the
// per-employee summary sheet. An empty collection produces no output and
// returns domain.ErrNoRecords.
func WriteLegal(w io.Writer, records []domain.LegalRecord) error {
	if len(records) == 0 {
		return domain.ErrNoRecords
	}

	rows := [][]string{legalColumns}
	for _, rec := range records {
		rows = append(rows, []string{
			rec.NombreCompleto,
			rec.Fecha,
			rec.TipoAntecedente,
			rec.Resumen,
			rec.ArchivoOriginal,
		})
	}

	summaryRows := [][]string{summaryColumns}
	for _, g := range domain.GroupRecords(records) {
		summaryRows = append(summaryRows, []string{
			g.NombreCompleto,
			fmt.Sprintf("%d", g.Count()),
			g.TiposJoined(),
			g.UltimaFechaText(),
			strings.Join(g.Archivos, ", "),
		})
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeSheet(f, legalSheet, rows, true); err != nil {
		return err
	}
	if err := writeSheet(f, summarySheet, summaryRows, false); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

// WriteShipments writes the tracking-history report. An empty history
// produces no output and returns domain.ErrNoRecords.
func WriteShipments(w io.Writer, records []domain.ShipmentRecord) error {
	if len(records) == 0 {
		return domain.ErrNoRecords
	}

	rows := [][]string{shipmentColumns}
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Destinatario,
			rec.Remitente,
			rec.FechaEnvio,
			rec.FechaEntrega,
			rec.NumeroSeguimiento,
			rec.Situacion,
		})
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeSheet(f, shipmentSheet, rows, true); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

// writeSheet fills one sheet with rows and sizes each column to its longest
// cell. rename replaces the workbook's default sheet instead of adding one.
func writeSheet(f *excelize.File, name string, rows [][]string, rename bool) error {
	if rename {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("naming sheet %q: %w", name, err)
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", name, err)
		}
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d of %q: %w", i+1, name, err)
		}
	}

	// Cosmetic only: fit each column to its longest stringified cell.
	for col := range rows[0] {
		width := float64(minColWidth)
		for _, row := range rows {
			if col < len(row) && float64(len(row[col])) > width {
				width = float64(len(row[col]))
			}
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, colName, colName, width); err != nil {
			return fmt.Errorf("sizing column %s of %q: %w", colName, name, err)
		}
	}
	return nil
}

// BuildFilename returns the report download name: Reporte_{kind}_{YYYY-MM-DD}.xlsx.
func BuildFilename(kind domain.RecordKind) string {
	return fmt.Sprintf("Reporte_%s_%s.xlsx", kind, time.Now().Format("2006-01-02"))
}
