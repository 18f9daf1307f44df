package doccheck

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/buildsafe/compliance-doc-service/dto"
)

func TestClassifyInsurance(t *testing.T) {
	text := `
		CERTIFICATE OF INSURANCE
		INSURED: ACME Construction LLC
		POLICY NUMBER: GL-1234567-2024
		COVERAGE TYPE: General Liability
	`

	assert.Equal(t, dto.DocTypeInsurance, Classify(text, zerolog.Nop()))
}

func TestClassifyInspection(t *testing.T) {
	text := `
		EQUIPMENT INSPECTION CHECKLIST
		INSPECTOR: John Smith
		INSPECTION DATE: 15/06/2024
		RESULT: PASS
	`

	assert.Equal(t, dto.DocTypeInspection, Classify(text, zerolog.Nop()))
}

func TestClassifyTraining(t *testing.T) {
	text := `
		OSHA TRAINING CERTIFICATE
		WORKER NAME: Albert Hernandez
		TRAINING HOURS: 40
	`

	assert.Equal(t, dto.DocTypeTraining, Classify(text, zerolog.Nop()))
}

func TestClassifyUnknownWhenNoKeywordsMatch(t *testing.T) {
	assert.Equal(t, dto.DocTypeUnknown, Classify("completely unrelated shopping list", zerolog.Nop()))
	assert.Equal(t, dto.DocTypeUnknown, Classify("", zerolog.Nop()))
}

func TestClassifyIsDeterministic(t *testing.T) {
	text := "liability insurance policy for the insured party"

	first := Classify(text, zerolog.Nop())
	second := Classify(text, zerolog.Nop())

	assert.Equal(t, first, second)
	assert.Equal(t, dto.DocTypeInsurance, first)
}

func TestClassifyTieResolvesByPriorityOrder(t *testing.T) {
	// One keyword hit for insurance ("policy") and one for inspection
	// ("inspector"): the tie goes to insurance, first in priority order.
	assert.Equal(t, dto.DocTypeInsurance, Classify("policy reviewed by inspector", zerolog.Nop()))

	// Inspection ties with training and wins the same way.
	assert.Equal(t, dto.DocTypeInspection, Classify("inspector osha", zerolog.Nop()))
}

func TestClassifyCountsEachKeywordOnce(t *testing.T) {
	// "policy" repeated three times still scores one point for insurance,
	// while two distinct inspection keywords score two.
	text := "policy policy policy inspector inspection date"

	assert.Equal(t, dto.DocTypeInspection, Classify(text, zerolog.Nop()))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, dto.DocTypeTraining, Classify("OSHA SAFETY TRAINING", zerolog.Nop()))
}
