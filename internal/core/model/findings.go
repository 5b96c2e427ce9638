package model

// MatchCandidate is one keyword resolved against the lexicon.
type MatchCandidate struct {
	Keyword     string  `json:"keyword"`
	English     string  `json:"english"`
	Marshallese string  `json:"marshallese"`
	Category    string  `json:"category"`
	MatchType   string  `json:"match_type"` // "exact" or "fuzzy"
	Similarity  float64 `json:"similarity,omitempty"`
}

// Findings aggregates one resolution pass over the input text.
// Every keyword lands in at most one of the match lists; exact wins.
type Findings struct {
	OriginalQuery string           `json:"original_query"`
	Keywords      []string         `json:"keywords"`
	ExactMatches  []MatchCandidate `json:"exact_matches"`
	FuzzyMatches  []MatchCandidate `json:"fuzzy_matches"`
	TotalKeywords int              `json:"total_keywords"`
	ExactCount    int              `json:"exact_count"`
	FuzzyCount    int              `json:"fuzzy_count"`
	NotFoundCount int              `json:"not_found_count"`
}
