// Package translate assembles dictionary findings, the completion service's
// output, and a confidence classification into the final translation result.
package translate

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jvai/lily/internal/core/model"
	"github.com/jvai/lily/internal/core/resolve"
	"github.com/jvai/lily/internal/llm"
)

type Translator struct {
	Resolver *resolve.Resolver
	LLM      llm.LLMClient
	Timeout  time.Duration
}

func NewTranslator(resolver *resolve.Resolver, llmClient llm.LLMClient, timeout time.Duration) *Translator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Translator{
		Resolver: resolver,
		LLM:      llmClient,
		Timeout:  timeout,
	}
}

// Translate runs the full pipeline for one input. Store and completion
// failures propagate typed; malformed model output never fails, it degrades
// through the parser's fallback tiers. The classification depends only on
// the resolution counts, so identical input against an unchanged lexicon
// classifies identically.
func (t *Translator) Translate(ctx context.Context, text string) (*model.TranslationResult, error) {
	findings, err := t.Resolver.Resolve(ctx, text)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(findings)

	genCtx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	raw, err := t.LLM.Generate(genCtx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion service: %w", err)
	}

	out, _ := ParseModelOutput(raw)
	if out.Translation == "" {
		out.Translation = text
	}

	cls := Classify(findings.ExactCount, findings.FuzzyCount,
		findings.NotFoundCount, findings.TotalKeywords)

	return assemble(findings, out, cls), nil
}

func assemble(f *model.Findings, out model.ModelOutput, cls Classification) *model.TranslationResult {
	exactList := make([]model.MatchSummary, 0, len(f.ExactMatches))
	for _, m := range f.ExactMatches {
		exactList = append(exactList, model.MatchSummary{
			Keyword:     m.Keyword,
			Translation: fmt.Sprintf("%s ↔ %s", m.English, m.Marshallese),
		})
	}

	fuzzyList := make([]model.MatchSummary, 0, len(f.FuzzyMatches))
	for _, m := range f.FuzzyMatches {
		fuzzyList = append(fuzzyList, model.MatchSummary{
			Keyword:     m.Keyword,
			Translation: fmt.Sprintf("%s ↔ %s", m.English, m.Marshallese),
			Similarity:  round2(m.Similarity),
		})
	}

	review := "Not needed"
	if cls.AdminReview {
		review = "Required"
	}

	return &model.TranslationResult{
		Translation: out.Translation,
		Context:     out.Context,
		Source:      cls.Source,
		Confidence:  cls.Confidence,
		Details: model.ResultDetails{
			TotalKeywords:  f.TotalKeywords,
			ExactMatches:   f.ExactCount,
			FuzzyMatches:   f.FuzzyCount,
			GeneratedWords: f.NotFoundCount,
			Breakdown:      out.WordBreakdown,
			ExactMatchList: exactList,
			FuzzyMatchList: fuzzyList,
		},
		AdminReviewNeeded: cls.AdminReview,
		Notes: fmt.Sprintf("Translation quality: %s. Admin review: %s",
			cls.Confidence, review),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
