package doccheck

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildsafe/compliance-doc-service/dto"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	edgeNonWord    = regexp.MustCompile(`^[^\w]+|[^\w]+$`)
	groupSyntax    = regexp.MustCompile(`\(\?[a-zA-Z]*:?`)
)

// Extract applies each document type's candidate patterns to the text and
// returns a field set covering the type's full schema. For every field the
// candidates are tried in priority order and the first non-empty capture
// wins. Fields that match nothing are present with a nil value and zero
// confidence. Extraction never fails: bad patterns and unmatched fields
// degrade to absence.
func Extract(text string, docType dto.DocumentType, log zerolog.Logger) dto.FieldSet {
	fields := dto.FieldSet{}

	specs, ok := fieldPatternsByType[docType]
	if !ok {
		return fields
	}

	for _, spec := range specs {
		fields[spec.Name] = extractField(text, spec, log)
	}
	return fields
}

func extractField(text string, spec FieldPattern, log zerolog.Logger) dto.FieldResult {
	for _, pattern := range spec.Patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Warn().Err(err).Str("field", spec.Name).Msg("skipping invalid pattern")
			continue
		}

		match := re.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}

		value := cleanValue(match[1])
		if value == "" {
			continue
		}

		conf := scoreMatch(value, pattern)
		log.Debug().Str("field", spec.Name).Str("value", value).Float64("confidence", conf).Msg("field extracted")
		return dto.FieldResult{Value: &value, Confidence: conf}
	}

	return dto.FieldResult{Confidence: 0.0}
}

// cleanValue trims the capture, collapses internal whitespace runs and
// strips leading/trailing non-word characters.
func cleanValue(raw string) string {
	v := strings.TrimSpace(raw)
	v = whitespaceRuns.ReplaceAllString(v, " ")
	v = edgeNonWord.ReplaceAllString(v, "")
	return v
}

// scoreMatch derives a confidence for a successful capture. The base of
// 0.8 is adjusted for suspicious lengths, rewarded when the winning
// pattern was label-anchored (contains a literal colon) and penalized
// when the value is a placeholder token, then clamped to [0, 1].
func scoreMatch(value, pattern string) float64 {
	conf := 0.8

	if len(value) < 2 {
		conf -= 0.3
	}
	if len(value) > 100 {
		conf -= 0.2
	}
	if labelAnchored(pattern) {
		conf += 0.1
	}
	if placeholderTokens[strings.ToLower(value)] {
		conf -= 0.4
	}

	if conf < 0.0 {
		conf = 0.0
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// labelAnchored reports whether the pattern matches against a literal
// field-label delimiter. Colons inside regex group syntax like (?i) and
// (?:...) are not labels and must not earn the anchor bonus.
func labelAnchored(pattern string) bool {
	return strings.Contains(groupSyntax.ReplaceAllString(pattern, ""), ":")
}
