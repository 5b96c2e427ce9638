package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore backs the lexicon, translation history, and submissions with
// an embedded sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapErr("open", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS translations (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		english_text     TEXT NOT NULL,
		marshallese_text TEXT NOT NULL,
		category         TEXT NOT NULL DEFAULT 'general',
		context          TEXT DEFAULT '',
		usage_count      INTEGER NOT NULL DEFAULT 0,
		is_favorite      INTEGER NOT NULL DEFAULT 0,
		created_at       DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at       DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_translations_english ON translations(english_text);
	CREATE INDEX IF NOT EXISTS idx_translations_marshallese ON translations(marshallese_text);
	CREATE INDEX IF NOT EXISTS idx_translations_usage ON translations(usage_count);

	CREATE TABLE IF NOT EXISTS history (
		id           TEXT PRIMARY KEY,
		source_text  TEXT NOT NULL,
		translation  TEXT NOT NULL,
		source       TEXT NOT NULL,
		confidence   TEXT NOT NULL,
		admin_review INTEGER NOT NULL DEFAULT 0,
		notes        TEXT DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'pending',
		created_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_history_status ON history(status, created_at);

	CREATE TABLE IF NOT EXISTS submissions (
		id               TEXT PRIMARY KEY,
		english_text     TEXT NOT NULL,
		marshallese_text TEXT NOT NULL,
		category         TEXT NOT NULL DEFAULT 'general',
		notes            TEXT DEFAULT '',
		status           TEXT NOT NULL DEFAULT 'pending',
		created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions(status, created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, wrapErr("init schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

const entryColumns = `id, english_text, marshallese_text, category, context, usage_count, is_favorite, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (*Entry, error) {
	var e Entry
	var fav int
	err := row.Scan(&e.ID, &e.English, &e.Marshallese, &e.Category, &e.Context,
		&e.UsageCount, &fav, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.IsFavorite = fav != 0
	return &e, nil
}

// ExactLookup matches keyword against either language field,
// case-insensitively. Lowest id wins when several rows match.
func (s *SQLiteStore) ExactLookup(ctx context.Context, keyword string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+`
		FROM translations
		WHERE LOWER(english_text) = LOWER(?)
		   OR LOWER(marshallese_text) = LOWER(?)
		ORDER BY id
		LIMIT 1`, keyword, keyword)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("exact lookup", err)
	}
	return entry, nil
}

// AllByUsageDesc returns every entry, most used first.
func (s *SQLiteStore) AllByUsageDesc(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM translations
		ORDER BY usage_count DESC, id`)
	if err != nil {
		return nil, wrapErr("enumerate", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, wrapErr("enumerate scan", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("enumerate", err)
	}
	return entries, nil
}

// SearchSubstring finds entries whose chosen language field contains query,
// most used first. language is "english" or "marshallese".
func (s *SQLiteStore) SearchSubstring(ctx context.Context, query, language string, limit int) ([]Entry, error) {
	field := "english_text"
	if language == "marshallese" {
		field = "marshallese_text"
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM translations
		WHERE `+field+` LIKE '%' || ? || '%'
		ORDER BY usage_count DESC, english_text
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, wrapErr("search", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, wrapErr("search scan", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// GetEntry fetches one entry by id. Returns nil when it does not exist.
func (s *SQLiteStore) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM translations WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("get entry", err)
	}
	return entry, nil
}

// Insert adds a new phrase pair and returns its id.
func (s *SQLiteStore) Insert(ctx context.Context, e Entry) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO translations (english_text, marshallese_text, category, context, usage_count, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.English, e.Marshallese, e.Category, e.Context, e.UsageCount, boolToInt(e.IsFavorite))
	if err != nil {
		return 0, wrapErr("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr("insert", err)
	}
	return id, nil
}

// IncrementUsage bumps the usage counter for one entry.
func (s *SQLiteStore) IncrementUsage(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE translations
		SET usage_count = usage_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	return wrapErr("increment usage", err)
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *SQLiteStore) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	_, err := s.db.ExecContext(ctx, `
		UPDATE translations
		SET is_favorite = 1 - is_favorite, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	if err != nil {
		return false, wrapErr("toggle favorite", err)
	}
	var fav int
	err = s.db.QueryRowContext(ctx,
		`SELECT is_favorite FROM translations WHERE id = ?`, id).Scan(&fav)
	if err != nil {
		return false, wrapErr("toggle favorite", err)
	}
	return fav != 0, nil
}

// SaveHistory persists one translation result and returns the record id.
func (s *SQLiteStore) SaveHistory(ctx context.Context, r HistoryRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = "pending"
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, source_text, translation, source, confidence, admin_review, notes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.SourceText, r.Translation, r.Source, r.Confidence,
		boolToInt(r.AdminReview), r.Notes, r.Status)
	if err != nil {
		return "", wrapErr("save history", err)
	}
	return r.ID, nil
}

// PendingHistory lists history records flagged for admin review, newest
// first.
func (s *SQLiteStore) PendingHistory(ctx context.Context, limit int) ([]HistoryRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_text, translation, source, confidence, admin_review, notes, status, created_at
		FROM history
		WHERE status = 'pending' AND admin_review = 1
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapErr("pending history", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var r HistoryRecord
		var review int
		err := rows.Scan(&r.ID, &r.SourceText, &r.Translation, &r.Source,
			&r.Confidence, &review, &r.Notes, &r.Status, &r.CreatedAt)
		if err != nil {
			return nil, wrapErr("pending history scan", err)
		}
		r.AdminReview = review != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// InsertSubmission records a user-proposed phrase pair as pending.
func (s *SQLiteStore) InsertSubmission(ctx context.Context, sub Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, english_text, marshallese_text, category, notes, status)
		VALUES (?, ?, ?, ?, ?, 'pending')`,
		sub.ID, sub.English, sub.Marshallese, sub.Category, sub.Notes)
	if err != nil {
		return "", wrapErr("insert submission", err)
	}
	return sub.ID, nil
}

// ApproveSubmission promotes a pending submission into the lexicon. The
// promotion and the status flip commit together.
func (s *SQLiteStore) ApproveSubmission(ctx context.Context, id string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, wrapErr("approve submission", err)
	}
	defer tx.Rollback()

	var sub Submission
	err = tx.QueryRowContext(ctx, `
		SELECT english_text, marshallese_text, category, notes
		FROM submissions
		WHERE id = ? AND status = 'pending'`, id).
		Scan(&sub.English, &sub.Marshallese, &sub.Category, &sub.Notes)
	if err != nil {
		return 0, wrapErr("approve submission", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO translations (english_text, marshallese_text, category, context)
		VALUES (?, ?, ?, ?)`,
		sub.English, sub.Marshallese, sub.Category, sub.Notes)
	if err != nil {
		return 0, wrapErr("approve submission", err)
	}
	entryID, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr("approve submission", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE submissions SET status = 'approved' WHERE id = ?`, id)
	if err != nil {
		return 0, wrapErr("approve submission", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, wrapErr("approve submission", err)
	}
	return entryID, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Lexicon = (*SQLiteStore)(nil)
