package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jvai/lily/internal/config"
	"github.com/jvai/lily/internal/core/dedupe"
	"github.com/jvai/lily/internal/core/resolve"
	"github.com/jvai/lily/internal/core/translate"
	"github.com/jvai/lily/internal/llm"
	"github.com/jvai/lily/internal/store"
)

type Server struct {
	Store      *store.SQLiteStore
	Translator *translate.Translator
	Dedupe     *dedupe.Deduplicator
	Notifier   Notifier
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Falling back to defaults + env", cfgPath, err)
		cfg = config.Default()
	}

	// Env vars override file values.
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Store.Path = v
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open lexicon store at %s: %v", cfg.Store.Path, err)
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	resolver := resolve.NewResolver(st, cfg.Pipeline.ScanThreshold)
	translator := translate.NewTranslator(resolver, llmClient, cfg.CompletionTimeout())

	return &Server{
		Store:      st,
		Translator: translator,
		Dedupe:     dedupe.NewDeduplicator(st, cfg.Pipeline.DefaultThreshold),
		Notifier:   &LogNotifier{},
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/api/translate", s.Translate)
	r.POST("/api/translations/search", s.SearchTranslations)
	r.GET("/api/translations/:id", s.GetTranslation)
	r.POST("/api/submissions", s.SubmitTranslation)
	r.GET("/api/history/pending", s.PendingHistory)

	return r
}

type TranslateRequest struct {
	Text string `json:"text"`
}

func (s *Server) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text must not be blank"})
		return
	}

	result, err := s.Translator.Translate(c.Request.Context(), req.Text)
	if err != nil {
		log.Printf("Translate failed: %v", err)
		if store.IsStoreError(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Lexicon store unavailable"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Completion service failed"})
		return
	}

	// History and notification are best-effort; the translation already
	// succeeded.
	record := store.HistoryRecord{
		SourceText:  req.Text,
		Translation: result.Translation,
		Source:      result.Source,
		Confidence:  result.Confidence,
		AdminReview: result.AdminReviewNeeded,
		Notes:       result.Notes,
	}
	if id, err := s.Store.SaveHistory(c.Request.Context(), record); err != nil {
		log.Printf("Failed to save history: %v", err)
	} else if result.AdminReviewNeeded {
		record.ID = id
		if err := s.Notifier.ReviewRequested(c.Request.Context(), record); err != nil {
			log.Printf("Failed to notify reviewers: %v", err)
		}
	}

	c.JSON(http.StatusOK, result)
}

type SearchRequest struct {
	Query          string `json:"query"`
	SourceLanguage string `json:"source_language"`
	Limit          int    `json:"limit"`
}

func (s *Server) SearchTranslations(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = "english"
	}

	entries, err := s.Store.SearchSubstring(c.Request.Context(), req.Query, req.SourceLanguage, req.Limit)
	if err != nil {
		log.Printf("Search failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Lexicon store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": entries})
}

// GetTranslation returns one entry and bumps its usage counter, which feeds
// the ordering of the fuzzy scan.
func (s *Server) GetTranslation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	entry, err := s.Store.GetEntry(c.Request.Context(), id)
	if err != nil {
		log.Printf("Get translation failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Lexicon store unavailable"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Translation not found"})
		return
	}

	if err := s.Store.IncrementUsage(c.Request.Context(), id); err != nil {
		log.Printf("Failed to increment usage for %d: %v", id, err)
	} else {
		entry.UsageCount++
	}

	c.JSON(http.StatusOK, entry)
}

type SubmissionRequest struct {
	English     string `json:"english"`
	Marshallese string `json:"marshallese"`
	Category    string `json:"category"`
	Notes       string `json:"notes"`
}

func (s *Server) SubmitTranslation(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.English) == "" || strings.TrimSpace(req.Marshallese) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both language fields are required"})
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}

	duplicates, err := s.Dedupe.FindDuplicates(c.Request.Context(), req.English, req.Marshallese)
	if err != nil {
		log.Printf("Duplicate scan failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Lexicon store unavailable"})
		return
	}

	id, err := s.Store.InsertSubmission(c.Request.Context(), store.Submission{
		English:     req.English,
		Marshallese: req.Marshallese,
		Category:    req.Category,
		Notes:       req.Notes,
	})
	if err != nil {
		log.Printf("Submission failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Lexicon store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                  id,
		"status":              "pending",
		"possible_duplicates": duplicates,
	})
}

func (s *Server) PendingHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := s.Store.PendingHistory(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Pending history failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Lexicon store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": records})
}
