// Package resolve drives the multi-stage lookup of input text against the
// lexicon: keyword extraction, exact match per keyword, then a fuzzy scan
// for whatever is left.
package resolve

import (
	"context"

	"github.com/jvai/lily/internal/core/fuzzy"
	"github.com/jvai/lily/internal/core/keyword"
	"github.com/jvai/lily/internal/core/model"
	"github.com/jvai/lily/internal/store"
)

type Resolver struct {
	Lexicon       store.Lexicon
	ScanThreshold float64
}

func NewResolver(lexicon store.Lexicon, scanThreshold float64) *Resolver {
	if scanThreshold <= 0 {
		scanThreshold = fuzzy.ScanThreshold
	}
	return &Resolver{
		Lexicon:       lexicon,
		ScanThreshold: scanThreshold,
	}
}

// Resolve runs the pipeline for one input. Store failures propagate typed;
// there is no internal retry.
func (r *Resolver) Resolve(ctx context.Context, text string) (*model.Findings, error) {
	keywords := keyword.Extract(text)
	if len(keywords) == 0 {
		// Stop-word-only or empty input still gets one keyword to resolve.
		keywords = []string{text}
	}

	var exactMatches []model.MatchCandidate
	var needsFuzzy []string

	for _, kw := range keywords {
		entry, err := r.Lexicon.ExactLookup(ctx, kw)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			needsFuzzy = append(needsFuzzy, kw)
			continue
		}
		exactMatches = append(exactMatches, model.MatchCandidate{
			Keyword:     kw,
			English:     entry.English,
			Marshallese: entry.Marshallese,
			Category:    entry.Category,
			MatchType:   "exact",
		})
	}

	var fuzzyMatches []model.MatchCandidate
	if len(needsFuzzy) > 0 {
		// One enumeration serves every remaining keyword; the lexicon does
		// not change mid-call.
		entries, err := r.Lexicon.AllByUsageDesc(ctx)
		if err != nil {
			return nil, err
		}
		for _, kw := range needsFuzzy {
			if best, ok := bestFuzzyMatch(kw, entries, r.ScanThreshold); ok {
				fuzzyMatches = append(fuzzyMatches, best)
			}
		}
	}

	total := len(keywords)
	findings := &model.Findings{
		OriginalQuery: text,
		Keywords:      keywords,
		ExactMatches:  exactMatches,
		FuzzyMatches:  fuzzyMatches,
		TotalKeywords: total,
		ExactCount:    len(exactMatches),
		FuzzyCount:    len(fuzzyMatches),
		NotFoundCount: total - len(exactMatches) - len(fuzzyMatches),
	}
	return findings, nil
}

// bestFuzzyMatch scans every entry against both language fields and keeps
// the single best-scoring one at or above threshold.
func bestFuzzyMatch(kw string, entries []store.Entry, threshold float64) (model.MatchCandidate, bool) {
	var best model.MatchCandidate
	bestScore := 0.0

	for _, e := range entries {
		simEng := fuzzy.Similarity(kw, e.English)
		simMar := fuzzy.Similarity(kw, e.Marshallese)

		score := simEng
		if simMar > score {
			score = simMar
		}
		if score < threshold || score <= bestScore {
			continue
		}
		bestScore = score
		best = model.MatchCandidate{
			Keyword:     kw,
			English:     e.English,
			Marshallese: e.Marshallese,
			Category:    e.Category,
			MatchType:   "fuzzy",
			Similarity:  score,
		}
	}

	return best, bestScore >= threshold
}
