package translate

import (
	"fmt"
	"strings"

	"github.com/jvai/lily/internal/core/model"
)

// BuildPrompt renders the dictionary findings into the completion prompt.
// The output is deterministic for a given Findings so that repeated calls
// with the same input produce the same instruction text.
func BuildPrompt(f *model.Findings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Input: %q\n", f.OriginalQuery)
	fmt.Fprintf(&b, "Keywords extracted: [%s]\n", strings.Join(f.Keywords, ", "))
	b.WriteString("\nDATABASE SEARCH RESULTS:\n\n")

	fmt.Fprintf(&b, "EXACT MATCHES (%d):\n", len(f.ExactMatches))
	for _, m := range f.ExactMatches {
		fmt.Fprintf(&b, "- '%s' → English: '%s' | Marshallese: '%s'\n",
			m.Keyword, m.English, m.Marshallese)
	}

	fmt.Fprintf(&b, "\nFUZZY MATCHES (%d) [for typos/similar words]:\n", len(f.FuzzyMatches))
	for _, m := range f.FuzzyMatches {
		fmt.Fprintf(&b, "- '%s' → English: '%s' | Marshallese: '%s' (similarity: %.2f)\n",
			m.Keyword, m.English, m.Marshallese, m.Similarity)
	}

	if f.NotFoundCount > 0 {
		fmt.Fprintf(&b, "\nKEYWORDS NOT FOUND: %d (generate these using your knowledge)\n", f.NotFoundCount)
	}

	b.WriteString(`
INSTRUCTIONS:
1. Auto-detect input language (English or Marshallese)
2. Use exact matches as-is (highest priority)
3. Use fuzzy matches for typos (medium priority)
4. Generate missing translations (lowest priority)
5. Combine all into one natural sentence in target language

Return in this EXACT JSON format:
{
  "translation": "the final clean translation",
  "context": "brief description of what this translation is about (topic/category)",
  "word_breakdown": {
    "word1": {"translation": "...", "source": "exact|fuzzy|generated", "confidence": "high|medium|low"},
    "word2": {"translation": "...", "source": "exact|fuzzy|generated", "confidence": "high|medium|low"}
  }
}`)

	return b.String()
}
