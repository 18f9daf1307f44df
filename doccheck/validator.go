package doccheck

import (
	"strings"
	"time"

	"github.com/buildsafe/compliance-doc-service/dto"
)

// ValidationRules holds the temporal thresholds applied by Validate.
type ValidationRules struct {
	// ExpiryGraceDays is how long past nominal expiry an insurance or
	// training document is still treated as valid.
	ExpiryGraceDays int
	// InspectionValidityDays bounds how far an inspection date may sit
	// from now, in either direction, for the result to count as current.
	InspectionValidityDays int
}

// DefaultRules mirrors the compliance policy: 30-day grace period and a
// 365-day inspection recency window.
var DefaultRules = ValidationRules{
	ExpiryGraceDays:        30,
	InspectionValidityDays: 365,
}

// Validate applies the document type's compliance rules to the extracted
// fields and returns a verdict. The reference time is an explicit input so
// validation stays deterministic. Validate is total: malformed or missing
// fields degrade to fail or unknown, never to an error.
func Validate(fields dto.FieldSet, docType dto.DocumentType, now time.Time, rules ValidationRules) dto.Verdict {
	switch docType {
	case dto.DocTypeInsurance, dto.DocTypeTraining:
		return validateExpiring(fields, docType, now, rules)
	case dto.DocTypeInspection:
		return validateInspection(fields, now, rules)
	default:
		return dto.VerdictUnknown
	}
}

// validateExpiring covers insurance and training documents, which share
// the same rule shape: required identity fields must be present, and the
// expiry date (when readable) must not be past the grace threshold.
func validateExpiring(fields dto.FieldSet, docType dto.DocumentType, now time.Time, rules ValidationRules) dto.Verdict {
	for _, name := range requiredFieldsByType[docType] {
		if !fields[name].Present() {
			return dto.VerdictFail
		}
	}

	expiry := fields["expiry_date"]
	if expiry.Present() {
		if d, ok := ParseDate(*expiry.Value); ok {
			threshold := now.AddDate(0, 0, -rules.ExpiryGraceDays)
			if d.After(threshold) {
				return dto.VerdictPass
			}
			return dto.VerdictFail
		}
	}

	// Required fields are there but expiry is missing or unreadable.
	return dto.VerdictUnknown
}

// validateInspection trusts the recorded result, bounded by the recency
// window. A PASS with an unreadable date still passes: the result is
// authoritative when the date cannot be checked.
func validateInspection(fields dto.FieldSet, now time.Time, rules ValidationRules) dto.Verdict {
	for _, name := range requiredFieldsByType[dto.DocTypeInspection] {
		if !fields[name].Present() {
			return dto.VerdictFail
		}
	}

	result := fields["result"]
	if !result.Present() {
		return dto.VerdictUnknown
	}

	switch strings.ToUpper(*result.Value) {
	case "PASS":
		d, ok := ParseDate(*fields["inspection_date"].Value)
		if !ok {
			return dto.VerdictPass
		}
		window := time.Duration(rules.InspectionValidityDays) * 24 * time.Hour
		age := now.Sub(d)
		if age > window || age < -window {
			return dto.VerdictFail
		}
		return dto.VerdictPass
	case "FAIL":
		return dto.VerdictFail
	default:
		return dto.VerdictUnknown
	}
}
