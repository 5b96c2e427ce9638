package llm

import (
	"context"
)

// LLMClient is the completion surface the translation pipeline depends on.
// Implementations send one prompt and return the model's raw text response
// unmodified; defensive parsing happens downstream.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
