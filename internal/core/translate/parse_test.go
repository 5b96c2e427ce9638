package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrictJSON(t *testing.T) {
	raw := `{
		"translation": "Ij aikuj dren",
		"context": "Basic needs",
		"word_breakdown": {
			"water": {"translation": "dren", "source": "exact", "confidence": "high"}
		}
	}`

	out, tier := ParseModelOutput(raw)
	assert.Equal(t, TierStrict, tier)
	assert.Equal(t, "Ij aikuj dren", out.Translation)
	assert.Equal(t, "Basic needs", out.Context)
	require.Contains(t, out.WordBreakdown, "water")
	assert.Equal(t, "dren", out.WordBreakdown["water"].Translation)
	assert.Equal(t, "exact", out.WordBreakdown["water"].Source)
}

func TestParseStrictJSONWithCodeFence(t *testing.T) {
	raw := "```json\n{\"translation\": \"Kommol\", \"context\": \"Greetings\"}\n```"

	out, tier := ParseModelOutput(raw)
	assert.Equal(t, TierStrict, tier)
	assert.Equal(t, "Kommol", out.Translation)
	assert.Equal(t, "Greetings", out.Context)
	assert.NotNil(t, out.WordBreakdown)
}

func TestParseStrictJSONWithBareFence(t *testing.T) {
	raw := "```\n{\"translation\": \"Iokwe\"}\n```"

	out, tier := ParseModelOutput(raw)
	assert.Equal(t, TierStrict, tier)
	assert.Equal(t, "Iokwe", out.Translation)
	assert.Equal(t, "Translation", out.Context)
}

func TestParseRegexFallback(t *testing.T) {
	// Scenario: prose response with an embedded translation field.
	raw := `Sure! Here is what I came up with. "translation": "Kommol" — hope that helps.`

	out, tier := ParseModelOutput(raw)
	assert.Equal(t, TierRegex, tier)
	assert.Equal(t, "Kommol", out.Translation)
	assert.Equal(t, "Translation", out.Context)
	assert.Empty(t, out.WordBreakdown)
}

func TestParseVerbatimFallback(t *testing.T) {
	raw := "  Iokwe eok  "

	out, tier := ParseModelOutput(raw)
	assert.Equal(t, TierVerbatim, tier)
	assert.Equal(t, "Iokwe eok", out.Translation)
	assert.Equal(t, "Translation", out.Context)
	assert.Empty(t, out.WordBreakdown)
}

func TestParseEmptyResponse(t *testing.T) {
	out, tier := ParseModelOutput("")
	assert.Equal(t, TierVerbatim, tier)
	assert.Equal(t, "", out.Translation)
}

func TestParseTierString(t *testing.T) {
	assert.Equal(t, "strict", TierStrict.String())
	assert.Equal(t, "regex", TierRegex.String())
	assert.Equal(t, "verbatim", TierVerbatim.String())
}
