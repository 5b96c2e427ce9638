package model

// Source classifications for a translation result.
const (
	SourceExactMatch   = "exact_match"
	SourceFuzzyMatch   = "fuzzy_match"
	SourceCombined     = "combined"
	SourceLLMGenerated = "llm_generated"
)

// Confidence levels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// WordEntry is the per-keyword breakdown returned by the model.
type WordEntry struct {
	Translation string `json:"translation"`
	Source      string `json:"source"`     // exact|fuzzy|generated
	Confidence  string `json:"confidence"` // high|medium|low
}

// ModelOutput matches the JSON shape the completion prompt asks for.
type ModelOutput struct {
	Translation   string               `json:"translation"`
	Context       string               `json:"context"`
	WordBreakdown map[string]WordEntry `json:"word_breakdown"`
}

// MatchSummary is the audit view of one match inside ResultDetails.
type MatchSummary struct {
	Keyword     string  `json:"keyword"`
	Translation string  `json:"translation"`
	Similarity  float64 `json:"similarity,omitempty"`
}

// ResultDetails carries the raw counts and match lists for audit/debugging.
type ResultDetails struct {
	TotalKeywords  int                  `json:"total_keywords"`
	ExactMatches   int                  `json:"exact_matches"`
	FuzzyMatches   int                  `json:"fuzzy_matches"`
	GeneratedWords int                  `json:"generated_words"`
	Breakdown      map[string]WordEntry `json:"breakdown"`
	ExactMatchList []MatchSummary       `json:"exact_match_list"`
	FuzzyMatchList []MatchSummary       `json:"fuzzy_match_list"`
}

// TranslationResult is the final assembled response of the pipeline.
type TranslationResult struct {
	Translation       string        `json:"translation"`
	Context           string        `json:"context"`
	Source            string        `json:"source"`
	Confidence        string        `json:"confidence"`
	Details           ResultDetails `json:"details"`
	AdminReviewNeeded bool          `json:"admin_review_needed"`
	Notes             string        `json:"notes"`
}
