package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legajos/internal/domain"
)

func TestParseRecordDate(t *testing.T) {
	d, ok := domain.ParseRecordDate("05/06/2023")
	require.True(t, ok)
	assert.Equal(t, "05/06/2023", domain.FormatRecordDate(d))
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, 6, int(d.Month()))
	assert.Equal(t, 5, d.Day())

	_, ok = domain.ParseRecordDate("not-a-date")
	assert.False(t, ok)
	_, ok = domain.ParseRecordDate("2023-06-05")
	assert.False(t, ok)
	_, ok = domain.ParseRecordDate("32/01/2023")
	assert.False(t, ok)

	// Padding spaces are tolerated
	_, ok = domain.ParseRecordDate(" 05/06/2023 ")
	assert.True(t, ok)
}

func TestGroupRecords(t *testing.T) {
	records := []domain.LegalRecord{
		{NombreCompleto: "Juan Pérez", Fecha: "10/01/2023", TipoAntecedente: "Suspensión", ArchivoOriginal: "a.pdf"},
		{NombreCompleto: "Ana Gómez", Fecha: "01/01/2023", TipoAntecedente: "Apercibimiento", ArchivoOriginal: "b.pdf"},
		{NombreCompleto: "Juan Pérez", Fecha: "05/06/2023", TipoAntecedente: "Apercibimiento", ArchivoOriginal: "c.pdf"},
		{NombreCompleto: "Juan Pérez", Fecha: "not-a-date", TipoAntecedente: "Suspensión", ArchivoOriginal: "d.pdf"},
	}

	groups := domain.GroupRecords(records)
	require.Len(t, groups, 2)

	// Groups keep first-appearance order
	juan := groups[0]
	assert.Equal(t, "Juan Pérez", juan.NombreCompleto)
	assert.Equal(t, 3, juan.Count())
	assert.Equal(t, []string{"Suspensión", "Apercibimiento"}, juan.Tipos)
	assert.Equal(t, "Suspensión, Apercibimiento", juan.TiposJoined())
	assert.Equal(t, []string{"a.pdf", "c.pdf", "d.pdf"}, juan.Archivos)
	assert.Equal(t, "05/06/2023", juan.UltimaFechaText())

	assert.Equal(t, "Ana Gómez", groups[1].NombreCompleto)
}

func TestGroupRecords_UnnamedBucket(t *testing.T) {
	records := []domain.LegalRecord{
		{NombreCompleto: "", Fecha: "10/01/2023", TipoAntecedente: "Suspensión"},
		{NombreCompleto: "", Fecha: "11/01/2023", TipoAntecedente: "Suspensión"},
	}

	groups := domain.GroupRecords(records)
	require.Len(t, groups, 1)
	assert.Equal(t, domain.UnnamedEmployee, groups[0].NombreCompleto)
	assert.Equal(t, 2, groups[0].Count())
}

func TestGroupRecords_NoParseableDates(t *testing.T) {
	records := []domain.LegalRecord{
		{NombreCompleto: "Juan Pérez", Fecha: "", TipoAntecedente: "Suspensión"},
		{NombreCompleto: "Juan Pérez", Fecha: "sin fecha", TipoAntecedente: "Suspensión"},
	}

	groups := domain.GroupRecords(records)
	require.Len(t, groups, 1)
	assert.Equal(t, domain.NoDate, groups[0].UltimaFechaText())
}

func TestGroupRecords_Empty(t *testing.T) {
	assert.Empty(t, domain.GroupRecords(nil))
}
