package extractor_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legajos/internal/extractor"
	"legajos/internal/port"
)

func TestValidateRequired(t *testing.T) {
	schema := extractor.AntecedenteSchema()

	complete := json.RawMessage(`{"nombre_completo":"Juan","fecha":"01/01/2024","tipo_antecedente":"Suspensión","resumen":"r","texto_completo":"t"}`)
	assert.NoError(t, extractor.ValidateRequired(complete, schema))

	missing := json.RawMessage(`{"nombre_completo":"Juan","fecha":"01/01/2024"}`)
	err := extractor.ValidateRequired(missing, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo_antecedente")

	nullField := json.RawMessage(`{"nombre_completo":null,"fecha":"01/01/2024","tipo_antecedente":"S","resumen":"r","texto_completo":"t"}`)
	assert.Error(t, extractor.ValidateRequired(nullField, schema))

	notObject := json.RawMessage(`["a","b"]`)
	assert.Error(t, extractor.ValidateRequired(notObject, schema))
}

func TestValidateRequired_NonObjectSchemas(t *testing.T) {
	// Array schemas and schemas without required fields validate trivially
	assert.NoError(t, extractor.ValidateRequired(json.RawMessage(`["x"]`), extractor.PlaceholderListSchema()))
	assert.NoError(t, extractor.ValidateRequired(json.RawMessage(`{}`), &port.Schema{Type: port.TypeObject}))
	assert.NoError(t, extractor.ValidateRequired(json.RawMessage(`{}`), nil))
}

func TestAntecedenteForEmployeeSchema_NameNotRequired(t *testing.T) {
	schema := extractor.AntecedenteForEmployeeSchema()
	assert.NotContains(t, schema.Required, "nombre_completo")

	// The name property is still described so the service may fill it
	assert.Contains(t, schema.Properties, "nombre_completo")

	noName := json.RawMessage(`{"fecha":"01/01/2024","tipo_antecedente":"S","resumen":"r","texto_completo":"t"}`)
	assert.NoError(t, extractor.ValidateRequired(noName, schema))
}

func TestSchema_MarshalsToWireFormat(t *testing.T) {
	data, err := json.Marshal(extractor.PlaceholderListSchema())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ARRAY","items":{"type":"STRING"}}`, string(data))
}
