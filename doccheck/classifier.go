package doccheck

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildsafe/compliance-doc-service/dto"
)

// Classify scores the text against each document type's keyword set and
// returns the highest-scoring type. Each keyword contributes at most one
// point regardless of repetition. Ties resolve to whichever type comes
// first in the fixed priority order (insurance, inspection, training);
// a zero top score means the text matched nothing and yields unknown.
func Classify(text string, log zerolog.Logger) dto.DocumentType {
	lower := strings.ToLower(text)

	best := dto.DocTypeUnknown
	bestScore := 0
	for _, docType := range typePriority {
		score := 0
		for _, kw := range keywordsByType[docType] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		log.Debug().Str("doc_type", string(docType)).Int("score", score).Msg("classification score")
		if score > bestScore {
			bestScore = score
			best = docType
		}
	}

	return best
}
