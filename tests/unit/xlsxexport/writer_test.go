package xlsxexport_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"legajos/internal/domain"
	"legajos/internal/xlsxexport"
)

func TestWriteLegal_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := xlsxexport.WriteLegal(&buf, nil)
	assert.ErrorIs(t, err, domain.ErrNoRecords)
	assert.Zero(t, buf.Len())
}

func TestWriteLegal_SheetsAndCells(t *testing.T) {
	records := []domain.LegalRecord{
		{NombreCompleto: "Juan Pérez", Fecha: "10/01/2023", TipoAntecedente: "Suspensión", Resumen: "falta injustificada", ArchivoOriginal: "a.pdf"},
		{NombreCompleto: "Juan Pérez", Fecha: "05/06/2023", TipoAntecedente: "Apercibimiento", Resumen: "llegada tarde", ArchivoOriginal: "b.pdf"},
		{NombreCompleto: "Ana Gómez", Fecha: "01/02/2023", TipoAntecedente: "Suspensión", Resumen: "abandono de puesto", ArchivoOriginal: "c.pdf"},
	}

	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteLegal(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Antecedentes", "Resumen por Persona"}, f.GetSheetList())

	// Data sheet: header row plus one row per record
	rows, err := f.GetRows("Antecedentes")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Apellido y Nombre", rows[0][0])
	assert.Equal(t, []string{"Juan Pérez", "10/01/2023", "Suspensión", "falta injustificada", "a.pdf"}, rows[1])

	// Summary sheet: one row per employee, first-appearance order
	summary, err := f.GetRows("Resumen por Persona")
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"Juan Pérez", "2", "Suspensión, Apercibimiento", "05/06/2023", "a.pdf, b.pdf"}, summary[1])
	assert.Equal(t, "Ana Gómez", summary[2][0])
}

func TestWriteLegal_ColumnWidthFloor(t *testing.T) {
	records := []domain.LegalRecord{
		{NombreCompleto: "X", Fecha: "1", TipoAntecedente: "Y", Resumen: "Z", ArchivoOriginal: "f"},
	}

	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteLegal(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// Column B's longest cell ("Fecha") is shorter than the floor
	width, err := f.GetColWidth("Antecedentes", "B")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, width, 10.0)
}

func TestWriteShipments(t *testing.T) {
	records := []domain.ShipmentRecord{
		{
			Destinatario:      "Juan Pérez",
			Remitente:         domain.SenderName,
			FechaEnvio:        "10/01/2024",
			FechaEntrega:      "12/01/2024",
			NumeroSeguimiento: "AB123",
			Situacion:         domain.SituacionEntregada,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteShipments(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Cartas Andreani"}, f.GetSheetList())

	rows, err := f.GetRows("Cartas Andreani")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Juan Pérez", domain.SenderName, "10/01/2024", "12/01/2024", "AB123", "entregada"}, rows[1])
}

func TestWriteShipments_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, xlsxexport.WriteShipments(&buf, nil), domain.ErrNoRecords)
}

func TestBuildFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, fmt.Sprintf("Reporte_antecedentes_%s.xlsx", today), xlsxexport.BuildFilename(domain.KindAntecedentes))
	assert.Equal(t, fmt.Sprintf("Reporte_andreani_%s.xlsx", today), xlsxexport.BuildFilename(domain.KindAndreani))
}
