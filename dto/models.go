package dto

type DocumentType string

const (
	DocTypeInsurance  DocumentType = "insurance"
	DocTypeInspection DocumentType = "inspection"
	DocTypeTraining   DocumentType = "training"
	DocTypeUnknown    DocumentType = "unknown"
)

type Verdict string

const (
	VerdictPass    Verdict = "pass"
	VerdictFail    Verdict = "fail"
	VerdictUnknown Verdict = "unknown"
)

// FieldResult holds one extracted field value with its confidence score.
// A nil Value means the field was not found; absent fields always carry
// confidence 0.0.
type FieldResult struct {
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Present reports whether the field was extracted with a non-empty value.
func (f FieldResult) Present() bool {
	return f.Value != nil && *f.Value != ""
}

// FieldSet maps field names to extraction results for one document. Every
// field name declared for the document's type appears as a key, even when
// nothing matched.
type FieldSet map[string]FieldResult

// DocumentResult is the terminal artifact of the pipeline for one document.
type DocumentResult struct {
	Identifier string       `json:"file"`
	DocType    DocumentType `json:"doc_type"`
	Fields     FieldSet     `json:"fields"`
	Verdict    Verdict      `json:"verdict"`
}
