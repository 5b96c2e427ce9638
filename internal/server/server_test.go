package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvai/lily/internal/core/dedupe"
	"github.com/jvai/lily/internal/core/model"
	"github.com/jvai/lily/internal/core/resolve"
	"github.com/jvai/lily/internal/core/translate"
	"github.com/jvai/lily/internal/llm"
	"github.com/jvai/lily/internal/store"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

var _ llm.LLMClient = (*stubLLM)(nil)

type recordingNotifier struct {
	records []store.HistoryRecord
}

func (n *recordingNotifier) ReviewRequested(ctx context.Context, record store.HistoryRecord) error {
	n.records = append(n.records, record)
	return nil
}

func newTestServer(t *testing.T, llmClient llm.LLMClient) (*Server, *recordingNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = st.Insert(context.Background(),
		store.Entry{English: "water", Marshallese: "Dren", Category: "nature"})
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	resolver := resolve.NewResolver(st, 0.65)
	return &Server{
		Store:      st,
		Translator: translate.NewTranslator(resolver, llmClient, 5*time.Second),
		Dedupe:     dedupe.NewDeduplicator(st, 0.8),
		Notifier:   notifier,
	}, notifier
}

func doJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranslateEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &stubLLM{response: `{"translation": "Dren", "context": "Nature"}`})
	r := srv.SetupRouter()

	w := doJSON(r, http.MethodPost, "/api/translate", gin.H{"text": "water"})
	require.Equal(t, http.StatusOK, w.Code)

	var result model.TranslationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Dren", result.Translation)
	assert.Equal(t, model.SourceExactMatch, result.Source)
	assert.False(t, result.AdminReviewNeeded)
}

func TestTranslateRejectsBlankText(t *testing.T) {
	srv, _ := newTestServer(t, &stubLLM{response: `{}`})
	r := srv.SetupRouter()

	w := doJSON(r, http.MethodPost, "/api/translate", gin.H{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranslateNotifiesOnReview(t *testing.T) {
	srv, notifier := newTestServer(t, &stubLLM{response: `{"translation": "generated"}`})
	r := srv.SetupRouter()

	w := doJSON(r, http.MethodPost, "/api/translate", gin.H{"text": "xyzzy unicorn"})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, notifier.records, 1)
	assert.Equal(t, "llm_generated", notifier.records[0].Source)

	pending, err := srv.Store.PendingHistory(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "xyzzy unicorn", pending[0].SourceText)
}

func TestTranslateMapsModelFailure(t *testing.T) {
	srv, _ := newTestServer(t, &stubLLM{err: context.DeadlineExceeded})
	r := srv.SetupRouter()

	w := doJSON(r, http.MethodPost, "/api/translate", gin.H{"text": "water"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &stubLLM{})
	r := srv.SetupRouter()

	w := doJSON(r, http.MethodPost, "/api/translations/search",
		gin.H{"query": "wat", "source_language": "english"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dren")
}

func TestGetTranslationIncrementsUsage(t *testing.T) {
	srv, _ := newTestServer(t, &stubLLM{})
	r := srv.SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/translations/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	entry, err := srv.Store.GetEntry(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 1, entry.UsageCount)
}

func TestSubmissionEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &stubLLM{})
	r := srv.SetupRouter()

	w := doJSON(r, http.MethodPost, "/api/submissions",
		gin.H{"english": "canoe", "marshallese": "Wa"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pending")

	w = doJSON(r, http.MethodPost, "/api/submissions", gin.H{"english": "canoe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmissionFlagsDuplicates(t *testing.T) {
	srv, _ := newTestServer(t, &stubLLM{})
	r := srv.SetupRouter()

	w := doJSON(r, http.MethodPost, "/api/submissions",
		gin.H{"english": "water", "marshallese": "Dren"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PossibleDuplicates []dedupe.Duplicate `json:"possible_duplicates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.PossibleDuplicates, 1)
	assert.True(t, resp.PossibleDuplicates[0].Exact)
}
