package translate

import (
	"regexp"
	"strings"

	"github.com/jvai/lily/internal/core/common"
	"github.com/jvai/lily/internal/core/model"
)

// ParseTier records which stage of the fallback chain produced the output.
type ParseTier int

const (
	// TierStrict: the response parsed as the requested JSON shape.
	TierStrict ParseTier = iota
	// TierRegex: JSON parse failed; a "translation" field was pulled out of
	// the raw text.
	TierRegex
	// TierVerbatim: nothing structured was recoverable; the raw text itself
	// is the translation.
	TierVerbatim
)

func (t ParseTier) String() string {
	switch t {
	case TierStrict:
		return "strict"
	case TierRegex:
		return "regex"
	default:
		return "verbatim"
	}
}

var translationField = regexp.MustCompile(`"translation":\s*"([^"]+)"`)

// ParseModelOutput extracts a structured result from whatever the completion
// service returned. It never fails: malformed output degrades through the
// regex tier down to using the raw text verbatim with context "Translation"
// and an empty breakdown.
func ParseModelOutput(raw string) (model.ModelOutput, ParseTier) {
	if out, err := common.ParseJSON[model.ModelOutput](raw); err == nil {
		if out.Context == "" {
			out.Context = "Translation"
		}
		if out.WordBreakdown == nil {
			out.WordBreakdown = map[string]model.WordEntry{}
		}
		return out, TierStrict
	}

	if m := translationField.FindStringSubmatch(raw); m != nil {
		return model.ModelOutput{
			Translation:   m[1],
			Context:       "Translation",
			WordBreakdown: map[string]model.WordEntry{},
		}, TierRegex
	}

	return model.ModelOutput{
		Translation:   strings.TrimSpace(raw),
		Context:       "Translation",
		WordBreakdown: map[string]model.WordEntry{},
	}, TierVerbatim
}
