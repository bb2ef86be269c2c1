// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for preferences and quote history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS shown (
			id INTEGER PRIMARY KEY,
			lang TEXT NOT NULL,
			phrase TEXT NOT NULL,
			mode TEXT NOT NULL,
			shown_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_shown_shown_at ON shown(shown_at);`,
		`CREATE INDEX IF NOT EXISTS idx_shown_lang_phrase ON shown(lang, phrase);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// GetString returns the raw value stored under key.
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetString stores value under key.
func (s *Store) SetString(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Format(time.RFC3339Nano))
	return err
}

// GetBool returns the boolean stored under key. A value that does not parse
// as a boolean is treated as unset.
func (s *Store) GetBool(ctx context.Context, key string) (bool, bool, error) {
	raw, ok, err := s.GetString(ctx, key)
	if err != nil || !ok {
		return false, false, err
	}
	v, perr := strconv.ParseBool(raw)
	if perr != nil {
		return false, false, nil
	}
	return v, true, nil
}

// SetBool stores value under key as "true" or "false".
func (s *Store) SetBool(ctx context.Context, key string, value bool) error {
	return s.SetString(ctx, key, strconv.FormatBool(value))
}

// ListSettings returns every stored setting.
func (s *Store) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ResetSettings deletes the given keys, or every setting when keys is empty.
func (s *Store) ResetSettings(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		_, err := s.db.ExecContext(ctx, `DELETE FROM settings`)
		return err
	}
	placeholders := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, key := range keys {
		placeholders[i] = "?"
		args[i] = key
	}
	query := fmt.Sprintf(`DELETE FROM settings WHERE key IN (%s)`, strings.Join(placeholders, ","))
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// InsertShown records a fully displayed phrase. A zero ShownAt means now.
func (s *Store) InsertShown(ctx context.Context, q model.ShownQuote) (int64, error) {
	shownAt := q.ShownAt
	if shownAt.IsZero() {
		shownAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO shown (lang, phrase, mode, shown_at) VALUES (?, ?, ?, ?)`,
		string(q.Lang), q.Phrase, string(q.Mode), shownAt.Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListQuoteAggregates returns per-phrase show counts filtered by cfg.
func (s *Store) ListQuoteAggregates(ctx context.Context, cfg model.HistoryConfig) ([]model.QuoteAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Lang != "" {
		clauses = append(clauses, "lang = ?")
		args = append(args, string(cfg.Lang))
	}
	if cfg.Since != nil {
		clauses = append(clauses, "shown_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT lang, phrase, COUNT(*) AS cnt, MAX(shown_at) AS last_seen
		FROM shown
		WHERE %s
		GROUP BY lang, phrase`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.QuoteAggregate
	for rows.Next() {
		var agg model.QuoteAggregate
		var lang, lastSeen string
		if err := rows.Scan(&lang, &agg.Phrase, &agg.Count, &lastSeen); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, lastSeen)
		if err != nil {
			return nil, err
		}
		agg.Lang = model.Language(lang)
		agg.LastSeen = parsed
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
