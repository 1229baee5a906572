package extractor

import (
	"encoding/json"
	"fmt"

	"legajos/internal/port"
)

// AntecedenteSchema describes the structured output requested for a
// disciplinary document.
func AntecedenteSchema() *port.Schema {
	return &port.Schema{
		Type: port.TypeObject,
		Properties: map[string]*port.Schema{
			"nombre_completo":  {Type: port.TypeString, Description: "Nombre y apellido completos del empleado."},
			"fecha":            {Type: port.TypeString, Description: "Fecha del documento en formato DD/MM/AAAA."},
			"tipo_antecedente": {Type: port.TypeString, Description: "Clasificación del antecedente."},
			"resumen":          {Type: port.TypeString, Description: "Un resumen breve del contenido del documento."},
			"texto_completo":   {Type: port.TypeString, Description: "El texto completo y sin formato extraído del documento."},
		},
		Required: []string{"nombre_completo", "fecha", "tipo_antecedente", "resumen", "texto_completo"},
	}
}

// AntecedenteForEmployeeSchema is the append-to-employee variant: the name
// is not required from the service because the caller force-assigns it.
func AntecedenteForEmployeeSchema() *port.Schema {
	s := AntecedenteSchema()
	s.Required = []string{"fecha", "tipo_antecedente", "resumen", "texto_completo"}
	return s
}

// ShipmentSchema describes the structured output requested for a
// tracking-number lookup.
func ShipmentSchema() *port.Schema {
	return &port.Schema{
		Type: port.TypeObject,
		Properties: map[string]*port.Schema{
			"destinatario":       {Type: port.TypeString, Description: "Apellido y Nombre del destinatario."},
			"remitente":          {Type: port.TypeString, Description: `Nombre del remitente, siempre "Sapac.SA / Fiorasi".`},
			"fecha_envio":        {Type: port.TypeString, Description: "Fecha de envío en formato DD/MM/AAAA."},
			"fecha_entrega":      {Type: port.TypeString, Description: "Fecha de entrega en formato DD/MM/AAAA. Si no está, poner N/A."},
			"numero_seguimiento": {Type: port.TypeString, Description: "El número de seguimiento o tracking."},
			"situacion":          {Type: port.TypeString, Description: "Estado del envío."},
		},
		Required: []string{"destinatario", "remitente", "fecha_envio", "fecha_entrega", "numero_seguimiento", "situacion"},
	}
}

// PlaceholderListSchema describes the output for placeholder extraction:
// a flat array of placeholder names.
func PlaceholderListSchema() *port.Schema {
	return &port.Schema{
		Type:  port.TypeArray,
		Items: &port.Schema{Type: port.TypeString},
	}
}

// ValidateRequired checks that every required field of an OBJECT schema is
// present and non-null in the parsed response. The gateway calls this before
// handing a structured result to any caller, so malformed responses never
// become partially built records.
func ValidateRequired(raw json.RawMessage, schema *port.Schema) error {
	if schema == nil || schema.Type != port.TypeObject || len(schema.Required) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("response is not a JSON object: %w", err)
	}
	for _, name := range schema.Required {
		v, ok := fields[name]
		if !ok || string(v) == "null" {
			return fmt.Errorf("response is missing required field %q", name)
		}
	}
	return nil
}
