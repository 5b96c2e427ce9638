package resolve

import (
	"context"
	"strings"

	"github.com/jvai/lily/internal/store"
)

// MockLexicon serves a fixed entry list, counting calls so tests can assert
// which stages ran.
type MockLexicon struct {
	Entries    []store.Entry
	Err        error
	ExactCalls int
	EnumCalls  int
}

func (m *MockLexicon) ExactLookup(ctx context.Context, keyword string) (*store.Entry, error) {
	m.ExactCalls++
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
	m.EnumCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries, nil
}
