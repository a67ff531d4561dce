package qa

import "strings"

// DefaultKnownNames is the hand-curated list of first names representative of
// the member population. It is a default, not a constant of the system: the
// Extractor takes any name list so the same logic can run against a
// different corpus.
var DefaultKnownNames = []string{
	"Layla", "Vikram", "Amira", "Sophia", "Fatima",
	"Armand", "Hans", "Lorenzo", "Lily", "Thiago", "Amina",
}

// Extractor scans questions for known member names.
//
// Matching is case-insensitive substring containment, nothing more. A name
// that happens to be a substring of another word will false-positive; that
// imprecision is accepted in exchange for predictability on this small,
// distinctive name list.
type Extractor struct {
	knownNames []string
}

// NewExtractor creates an Extractor over the given name list. A nil or empty
// list falls back to DefaultKnownNames.
func NewExtractor(knownNames []string) *Extractor {
	if len(knownNames) == 0 {
		knownNames = DefaultKnownNames
	}
	return &Extractor{knownNames: knownNames}
}

// Extract returns every known name mentioned in the question. A question may
// reference multiple members; result order follows the configured name list.
func (e *Extractor) Extract(question string) []string {
	questionLower := strings.ToLower(question)

	var found []string
	for _, name := range e.knownNames {
		if strings.Contains(questionLower, strings.ToLower(name)) {
			found = append(found, name)
		}
	}
	return found
}
