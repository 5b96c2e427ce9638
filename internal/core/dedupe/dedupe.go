// Package dedupe flags user submissions that duplicate, or nearly
// duplicate, phrase pairs already in the lexicon, so curators review the
// overlap instead of accumulating variants.
package dedupe

import (
	"context"
	"sort"

	"github.com/jvai/lily/internal/core/fuzzy"
	"github.com/jvai/lily/internal/store"
)

// Duplicate pairs a proposed submission with an existing lexicon entry.
type Duplicate struct {
	EntryID     int64   `json:"entry_id"`
	English     string  `json:"english"`
	Marshallese string  `json:"marshallese"`
	Similarity  float64 `json:"similarity"`
	Exact       bool    `json:"exact"`
}

type Deduplicator struct {
	Lexicon   store.Lexicon
	Threshold float64
}

func NewDeduplicator(lexicon store.Lexicon, threshold float64) *Deduplicator {
	if threshold <= 0 {
		threshold = fuzzy.DefaultThreshold
	}
	return &Deduplicator{
		Lexicon:   lexicon,
		Threshold: threshold,
	}
}

// FindDuplicates scans the lexicon for entries close to the proposed pair.
// An entry qualifies when either its English side resembles the proposed
// English text or its Marshallese side resembles the proposed Marshallese
// text. Exact (case-insensitive) hits sort ahead of near misses.
func (d *Deduplicator) FindDuplicates(ctx context.Context, english, marshallese string) ([]Duplicate, error) {
	entries, err := d.Lexicon.AllByUsageDesc(ctx)
	if err != nil {
		return nil, err
	}

	var dups []Duplicate
	for _, e := range entries {
		simEng := fuzzy.Similarity(english, e.English)
		simMar := fuzzy.Similarity(marshallese, e.Marshallese)

		score := simEng
		if simMar > score {
			score = simMar
		}
		if score < d.Threshold {
			continue
		}
		dups = append(dups, Duplicate{
			EntryID:     e.ID,
			English:     e.English,
			Marshallese: e.Marshallese,
			Similarity:  score,
			Exact:       simEng == 1.0 && simMar == 1.0,
		})
	}

	// Exact duplicates first, then by similarity.
	sort.SliceStable(dups, func(i, j int) bool {
		if dups[i].Exact != dups[j].Exact {
			return dups[i].Exact
		}
		return dups[i].Similarity > dups[j].Similarity
	})
	return dups, nil
}
