package translate

import (
	"context"
	"strings"

	"github.com/jvai/lily/internal/store"
)

type MockLLMClient struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

type MockLexicon struct {
	Entries []store.Entry
	Err     error
}

func (m *MockLexicon) ExactLookup(ctx context.Context, keyword string) (*store.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Entries {
		if strings.EqualFold(m.Entries[i].English, keyword) ||
			strings.EqualFold(m.Entries[i].Marshallese, keyword) {
			return &m.Entries[i], nil
		}
	}
	return nil, nil
}

func (m *MockLexicon) AllByUsageDesc(ctx context.Context) ([]store.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries, nil
}
