// Package keyword extracts meaningful tokens from free-text input for
// lexicon resolution. It is language-agnostic across the two supported
// languages: both stop-word sets are applied regardless of input language.
package keyword

import "strings"

var englishStopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {},
	"to": {}, "was": {}, "will": {}, "with": {}, "i": {}, "me": {}, "my": {},
	"you": {}, "your": {}, "this": {}, "these": {}, "those": {}, "can": {},
	"do": {}, "does": {}, "did": {}, "where": {}, "what": {}, "when": {},
	"who": {}, "which": {}, "why": {}, "how": {},
}

var marshalleseStopWords = map[string]struct{}{
	"im": {}, "eo": {}, "ro": {}, "ji": {},
}

// Punctuation stripped from token edges before filtering.
const punctCutset = ".,!?;:—-"

// Extract lowercases the input, splits on whitespace, strips punctuation
// from token edges, and drops stop-words and empty tokens. It may return
// an empty slice; callers that need a guaranteed keyword fall back to the
// whole input string.
func Extract(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, punctCutset)
		if w == "" {
			continue
		}
		if _, stop := englishStopWords[w]; stop {
			continue
		}
		if _, stop := marshalleseStopWords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}
