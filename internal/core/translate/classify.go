package translate

import "github.com/jvai/lily/internal/core/model"

// Classification is the quality verdict for one resolution pass.
type Classification struct {
	Source      string
	Confidence  string
	AdminReview bool
}

// Classify maps resolution counts to a source classification, confidence
// level, and review flag. Rules apply top to bottom, first match wins:
//
//	all keywords exact            → exact_match, high, no review
//	some fuzzy, nothing missing   → fuzzy_match, medium, no review
//	some matched, some missing    → combined, medium, review
//	nothing matched               → llm_generated, medium, review
func Classify(exact, fuzzy, notFound, total int) Classification {
	switch {
	case exact == total:
		return Classification{model.SourceExactMatch, model.ConfidenceHigh, false}
	case fuzzy > 0 && notFound == 0:
		return Classification{model.SourceFuzzyMatch, model.ConfidenceMedium, false}
	case exact > 0 || fuzzy > 0:
		return Classification{model.SourceCombined, model.ConfidenceMedium, notFound > 0}
	default:
		return Classification{model.SourceLLMGenerated, model.ConfidenceMedium, true}
	}
}
