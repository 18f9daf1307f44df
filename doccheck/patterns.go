package doccheck

import "github.com/buildsafe/compliance-doc-service/dto"

// FieldPattern is an ordered list of candidate patterns for one field.
// Earlier entries are preferred phrasings; label-anchored patterns (those
// containing a literal colon) score higher than bare fallbacks.
type FieldPattern struct {
	Name     string
	Patterns []string
}

// typePriority fixes the tie-break order for classification.
var typePriority = []dto.DocumentType{
	dto.DocTypeInsurance,
	dto.DocTypeInspection,
	dto.DocTypeTraining,
}

var keywordsByType = map[dto.DocumentType][]string{
	dto.DocTypeInsurance: {
		"liability insurance", "general liability", "workers compensation",
		"certificate of insurance", "insurance certificate", "policy",
		"coverage", "insured", "insurer", "premium",
	},
	dto.DocTypeInspection: {
		"inspection checklist", "inspection sheet", "equipment inspection",
		"safety inspection", "crane inspection", "hoist inspection",
		"inspector", "qualified person", "inspection date",
	},
	dto.DocTypeTraining: {
		"training card", "osha", "safety training", "certification",
		"worker qualification", "training certificate", "safety card",
		"competent person", "training hours",
	},
}

var fieldPatternsByType = map[dto.DocumentType][]FieldPattern{
	dto.DocTypeInsurance: {
		{Name: "insured", Patterns: []string{
			`(?i)insured\s*:\s*(.+)`,
			`(?i)name\s+of\s+insured\s+(.+)`,
		}},
		{Name: "policy_number", Patterns: []string{
			`(?i)policy\s*(?:number|no\.?|#)\s*:\s*(.+)`,
			`(?i)policy\s+(?:no\.?|#)\s+([A-Za-z]{0,4}-?\d[\w-]*)`,
		}},
		{Name: "insurer", Patterns: []string{
			`(?i)insurer\s*:\s*(.+)`,
			`(?i)insurance\s+company\s*:\s*(.+)`,
			`(?i)underwritten\s+by\s+(.+)`,
		}},
		{Name: "coverage_type", Patterns: []string{
			`(?i)coverage\s+type\s*:\s*(.+)`,
			`(?i)type\s+of\s+coverage\s*:\s*(.+)`,
			`(?i)coverage\s*:\s*(.+)`,
		}},
		{Name: "effective_date", Patterns: []string{
			`(?i)effective\s+date\s*:\s*(.+)`,
			`(?i)(?:issue|start)\s+date\s*:\s*(.+)`,
			`(?i)effective\s+from\s+(.+)`,
		}},
		{Name: "expiry_date", Patterns: []string{
			`(?i)expir(?:y|ation|i)\s+date\s*:\s*(.+)`,
			`(?i)valid\s+(?:until|through|thru)\s+(.+)`,
			`(?i)expires?\s+(?:on\s+)?([\w/.,\- ]+)`,
		}},
	},
	dto.DocTypeInspection: {
		{Name: "inspector", Patterns: []string{
			`(?i)inspector\s*:\s*(.+)`,
			`(?i)inspected\s+by\s+(.+)`,
		}},
		{Name: "inspection_date", Patterns: []string{
			`(?i)inspection\s+date\s*:\s*(.+)`,
			`(?i)date\s+of\s+inspection\s+(.+)`,
			`(?i)\bdate\s*:\s*(.+)`,
		}},
		{Name: "equipment_id", Patterns: []string{
			`(?i)(?:equipment|crane|hoist|scaffold)\s+id\s*:\s*(.+)`,
			`(?i)(?:unit|serial)\s*(?:no\.?|number)\s*:\s*(.+)`,
		}},
		{Name: "result", Patterns: []string{
			`(?i)result\s*:\s*(.+)`,
			`(?i)overall\s+result\s+(PASS|FAIL)`,
			`(?i)\b(PASS|FAIL)\b`,
		}},
	},
	dto.DocTypeTraining: {
		{Name: "worker_name", Patterns: []string{
			`(?i)worker\s+name\s*:\s*(.+)`,
			`(?i)(?:employee|holder)\s+name\s*:\s*(.+)`,
			`(?i)\bname\s*:\s*(.+)`,
		}},
		{Name: "certificate_id", Patterns: []string{
			`(?i)certificate\s*(?:id|no\.?|number)\s*:\s*(.+)`,
			`(?i)card\s*(?:id|no\.?|number)\s*:\s*(.+)`,
			`(?i)cert\.?\s*#\s*([\w-]+)`,
		}},
		{Name: "hours", Patterns: []string{
			`(?i)(?:training\s+)?hours\s*:\s*(.+)`,
			`(?i)\b(\d{1,3})\s*(?:hour|hr)s?\b`,
		}},
		{Name: "issue_date", Patterns: []string{
			`(?i)issue\s+date\s*:\s*(.+)`,
			`(?i)(?:issued|completed)\s+on\s+(.+)`,
		}},
		{Name: "expiry_date", Patterns: []string{
			`(?i)expir(?:y|ation|i)\s+date\s*:\s*(.+)`,
			`(?i)valid\s+(?:until|through|thru)\s+(.+)`,
			`(?i)expires?\s+(?:on\s+)?([\w/.,\- ]+)`,
		}},
		{Name: "issued_by", Patterns: []string{
			`(?i)issued\s+by\s*:\s*(.+)`,
			`(?i)(?:training\s+provider|instructor)\s*:\s*(.+)`,
		}},
	},
}

var requiredFieldsByType = map[dto.DocumentType][]string{
	dto.DocTypeInsurance:  {"insured", "policy_number"},
	dto.DocTypeInspection: {"inspector", "inspection_date"},
	dto.DocTypeTraining:   {"worker_name", "certificate_id"},
}

// placeholderTokens are values OCR commonly produces for blank form fields.
var placeholderTokens = map[string]bool{
	"n/a":     true,
	"none":    true,
	"unknown": true,
	"tbd":     true,
}

// Schema returns the declared field names for a document type.
func Schema(docType dto.DocumentType) []string {
	specs := fieldPatternsByType[docType]
	names := make([]string, 0, len(specs))
	for _, fs := range specs {
		names = append(names, fs.Name)
	}
	return names
}
