package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Entry is one bilingual phrase pair in the lexicon.
type Entry struct {
	ID          int64     `json:"id"`
	English     string    `json:"english"`
	Marshallese string    `json:"marshallese"`
	Category    string    `json:"category"`
	Context     string    `json:"context,omitempty"`
	UsageCount  int       `json:"usage_count"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryRecord is a persisted translation result awaiting (or past) review.
type HistoryRecord struct {
	ID          string    `json:"id"`
	SourceText  string    `json:"source_text"`
	Translation string    `json:"translation"`
	Source      string    `json:"source"`
	Confidence  string    `json:"confidence"`
	AdminReview bool      `json:"admin_review"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"` // pending | updated
	CreatedAt   time.Time `json:"created_at"`
}

// Submission is a user-proposed phrase pair pending curator review.
type Submission struct {
	ID          string    `json:"id"`
	English     string    `json:"english"`
	Marshallese string    `json:"marshallese"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"` // pending | approved | rejected
	CreatedAt   time.Time `json:"created_at"`
}

// Lexicon is the read surface the resolution pipeline depends on.
type Lexicon interface {
	// ExactLookup matches keyword case-insensitively against either language
	// field and returns the first hit by lowest id, or nil when nothing
	// matches.
	ExactLookup(ctx context.Context, keyword string) (*Entry, error)

	// AllByUsageDesc enumerates every entry ordered by usage count
	// descending (id ascending on ties), for client-side fuzzy scanning.
	// Full-scan cost is acceptable at dictionary scale.
	AllByUsageDesc(ctx context.Context) ([]Entry, error)
}

// StoreError wraps a storage failure. Callers treat it as retryable.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err originated in the lexicon store.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
