package extractor

import "fmt"

// BuildAntecedentePrompt returns the extraction prompt for an employee
// disciplinary document.
func BuildAntecedentePrompt() string {
	return `Analiza el documento adjunto de un empleado. Extrae y devuelve el texto completo del documento. ` +
		`Adicionalmente, extrae la siguiente información estructurada: nombre y apellido, fecha del documento ` +
		`(en formato DD/MM/AAAA), tipo de antecedente (ej: 'llamado de atención', 'suspensión', 'descargo'), ` +
		`y un resumen breve. Responde únicamente con un objeto JSON que contenga tanto el texto completo como los datos estructurados.`
}

// BuildAntecedenteForEmployeePrompt returns the extraction prompt used when
// appending a new record to a known employee. The name is pre-bound into the
// prompt; the caller still force-assigns it onto the result afterward.
func BuildAntecedenteForEmployeePrompt(nombreCompleto string) string {
	return fmt.Sprintf(`Analiza el documento adjunto. Extrae y devuelve el texto completo. `+
		`Adicionalmente, extrae la fecha (DD/MM/AAAA), tipo de antecedente y un resumen. `+
		`El nombre del empleado es '%s'. Responde únicamente con un objeto JSON.`, nombreCompleto)
}

// BuildFullTextPrompt returns the prompt for plain full-text extraction.
func BuildFullTextPrompt() string {
	return "Extrae el texto completo y sin formato del siguiente documento. Responde únicamente con el texto extraído."
}

// BuildTemplatePrompt returns the prompt for generating a legal document
// template with double-brace placeholders.
func BuildTemplatePrompt(kind, extra string) string {
	prompt := fmt.Sprintf(`Genera una plantilla de documento legal en español para el siguiente propósito: "%s". `, kind)
	if extra != "" {
		prompt += fmt.Sprintf(`Considera esta petición adicional: "%s". `, extra)
	}
	prompt += `La plantilla debe ser profesional, clara y contener placeholders comunes entre llaves dobles ` +
		`(ej: {{nombre_completo}}, {{dni}}, {{fecha_actual}}, {{domicilio}}). ` +
		`Responde únicamente con el texto completo de la plantilla en formato de texto plano.`
	return prompt
}

// BuildPlaceholderPrompt returns the prompt for listing the placeholder
// names found in template text.
func BuildPlaceholderPrompt(templateText string) string {
	return fmt.Sprintf(`Analiza el siguiente texto y extrae todos los placeholders o campos a rellenar. `+
		`Los placeholders están entre llaves dobles (ej: {{nombre}}, {{dni}}). `+
		`Devuelve únicamente un array de strings JSON con los nombres de los placeholders encontrados, sin las llaves. `+
		`Por ejemplo, si encuentras "{{nombre_completo}}" y "{{fecha}}", la respuesta debe ser ["nombre_completo", "fecha"]. `+
		`Si no encuentras ninguno, devuelve un array vacío. Texto: "%s"`, templateText)
}

// BuildShipmentPrompt returns the prompt for a tracking-number lookup.
func BuildShipmentPrompt(trackingNumber string) string {
	return fmt.Sprintf(`Simula la información de seguimiento para una carta documento de Andreani con el número `+
		`de seguimiento '%s'. El remitente es siempre "Sapac.SA / Fiorasi". Genera datos realistas para los `+
		`siguientes campos: destinatario (nombre y apellido), fecha de envío (en formato DD/MM/AAAA), fecha de `+
		`entrega (DD/MM/AAAA o 'N/A' si no fue entregada), y situación ('entregada', 'en sucursal', `+
		`'en distribución', 'devuelta al remitente'). Asegúrate de que el número de seguimiento en la respuesta `+
		`sea exactamente '%s'. Responde únicamente con un objeto JSON.`, trackingNumber, trackingNumber)
}

// ConsultExpertPrefix is prepended to the user query for the expert-tier
// half of a consultation. The general-tier half sends the query verbatim.
const ConsultExpertPrefix = `Soy abogado consultor y redactor de la parte empleadora (en este caso Ford Fiorasi) ` +
	`teniendo en cuenta la legislación vigente y lo que dice el manual de derecho laboral de Julio Armando ` +
	`Grisolia 2022 en principal u otro para fundamentar en los doctrinarios y la misma legislación vigente LCT ` +
	`y el convenio vigente entre SMATA y ACARA si correspondiere para el caso concreto que te pregunte. ` +
	`Todo esto sin inventar, si no supieras me lo decís. Contestame o ayudame a redactar mejor lo siguiente: `
