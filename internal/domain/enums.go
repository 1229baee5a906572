package domain

// FileType represents the file types accepted for extraction.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
	FileTypeDOC  FileType = "doc"
	FileTypeDOCX FileType = "docx"
	FileTypeODT  FileType = "odt"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
	"application/msword": FileTypeDOC,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FileTypeDOCX,
	"application/vnd.oasis.opendocument.text":                                 FileTypeODT,
}

// AllowedExtensions maps file extensions (without dot) to their MIME type.
var AllowedExtensions = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"odt":  "application/vnd.oasis.opendocument.text",
}

// RecordKind selects between the two record collections for export.
type RecordKind string

const (
	KindAntecedentes RecordKind = "antecedentes"
	KindAndreani     RecordKind = "andreani"
)

// LegalField names the working-copy fields editable through the
// reconciliation panel. The employee name and identifier are not editable:
// the name is the grouping key a working copy is bound to.
type LegalField string

const (
	FieldFecha           LegalField = "fecha"
	FieldTipoAntecedente LegalField = "tipo_antecedente"
	FieldResumen         LegalField = "resumen"
	FieldTextoCompleto   LegalField = "texto_completo"
)

// EditableFields is the set of fields EditField accepts.
var EditableFields = map[LegalField]bool{
	FieldFecha:           true,
	FieldTipoAntecedente: true,
	FieldResumen:         true,
	FieldTextoCompleto:   true,
}

// Known shipment statuses. The field is free text and not enforced; these
// exist for documentation and for the lookup prompt.
const (
	SituacionEntregada      = "entregada"
	SituacionEnSucursal     = "en sucursal"
	SituacionEnDistribucion = "en distribución"
	SituacionDevuelta       = "devuelta al remitente"
)
