package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func seed(t *testing.T, st *SQLiteStore) (waterID, fishID int64) {
	t.Helper()
	ctx := context.Background()

	waterID, err := st.Insert(ctx, Entry{English: "water", Marshallese: "Dren", Category: "nature"})
	require.NoError(t, err)
	fishID, err = st.Insert(ctx, Entry{English: "fish", Marshallese: "Ek", Category: "nature", UsageCount: 5})
	require.NoError(t, err)
	return waterID, fishID
}

func TestExactLookupEitherField(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)
	ctx := context.Background()

	byEnglish, err := st.ExactLookup(ctx, "water")
	require.NoError(t, err)
	require.NotNil(t, byEnglish)
	assert.Equal(t, "Dren", byEnglish.Marshallese)

	byMarshallese, err := st.ExactLookup(ctx, "ek")
	require.NoError(t, err)
	require.NotNil(t, byMarshallese)
	assert.Equal(t, "fish", byMarshallese.English)
}

func TestExactLookupCaseInsensitive(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)

	entry, err := st.ExactLookup(context.Background(), "WATER")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "water", entry.English)
}

func TestExactLookupMissReturnsNil(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)

	entry, err := st.ExactLookup(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestExactLookupLowestIDWins(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	first, err := st.Insert(ctx, Entry{English: "water", Marshallese: "Dren"})
	require.NoError(t, err)
	_, err = st.Insert(ctx, Entry{English: "Water", Marshallese: "Dren eo"})
	require.NoError(t, err)

	entry, err := st.ExactLookup(ctx, "water")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, first, entry.ID)
}

func TestAllByUsageDescOrdering(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)

	entries, err := st.AllByUsageDesc(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "fish", entries[0].English)
	assert.Equal(t, "water", entries[1].English)
}

func TestIncrementUsage(t *testing.T) {
	st := openTestStore(t)
	waterID, _ := seed(t, st)
	ctx := context.Background()

	require.NoError(t, st.IncrementUsage(ctx, waterID))
	require.NoError(t, st.IncrementUsage(ctx, waterID))

	entry, err := st.GetEntry(ctx, waterID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.UsageCount)
}

func TestSearchSubstring(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)
	ctx := context.Background()

	english, err := st.SearchSubstring(ctx, "wat", "english", 10)
	require.NoError(t, err)
	require.Len(t, english, 1)
	assert.Equal(t, "water", english[0].English)

	marshallese, err := st.SearchSubstring(ctx, "Dre", "marshallese", 10)
	require.NoError(t, err)
	require.Len(t, marshallese, 1)
	assert.Equal(t, "Dren", marshallese[0].Marshallese)
}

func TestToggleFavorite(t *testing.T) {
	st := openTestStore(t)
	waterID, _ := seed(t, st)
	ctx := context.Background()

	fav, err := st.ToggleFavorite(ctx, waterID)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = st.ToggleFavorite(ctx, waterID)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestSaveAndListHistory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	id, err := st.SaveHistory(ctx, HistoryRecord{
		SourceText:  "xyzzy",
		Translation: "generated",
		Source:      "llm_generated",
		Confidence:  "medium",
		AdminReview: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Reviewed-not-needed records stay out of the pending queue.
	_, err = st.SaveHistory(ctx, HistoryRecord{
		SourceText:  "water",
		Translation: "Dren",
		Source:      "exact_match",
		Confidence:  "high",
	})
	require.NoError(t, err)

	pending, err := st.PendingHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, id, pending[0].ID)
	assert.Equal(t, "pending", pending[0].Status)
	assert.True(t, pending[0].AdminReview)
}

func TestApproveSubmissionPromotesToLexicon(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	subID, err := st.InsertSubmission(ctx, Submission{
		English:     "canoe",
		Marshallese: "Wa",
		Category:    "transport",
		Notes:       "outrigger canoe",
	})
	require.NoError(t, err)

	entryID, err := st.ApproveSubmission(ctx, subID)
	require.NoError(t, err)

	entry, err := st.ExactLookup(ctx, "canoe")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, entryID, entry.ID)
	assert.Equal(t, "Wa", entry.Marshallese)

	// A second approval finds no pending row.
	_, err = st.ApproveSubmission(ctx, subID)
	assert.Error(t, err)
}

func TestStoreErrorTyping(t *testing.T) {
	st := openTestStore(t)
	st.Close()

	_, err := st.ExactLookup(context.Background(), "water")
	require.Error(t, err)
	assert.True(t, IsStoreError(err))
}
