package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Hyunsang-coder/slideglot/internal"
	"github.com/Hyunsang-coder/slideglot/internal/glossary"
)

// Store is a SQLite-backed glossary cache
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at the given path
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS glossaries (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Key derives the cache key from the deck's text segments and the
// extraction parameters. Both the target language and the term bound are
// part of the key so a cached glossary is never reused across languages or
// extraction settings.
func Key(segments []string, targetLang string, maxTerms int) string {
	// Each segment is hashed as its own part so segment boundaries stay
	// unambiguous even when a segment contains newlines
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, segments...)
	parts = append(parts, strings.ToLower(targetLang), strconv.Itoa(maxTerms))
	return internal.HashContent(parts...)
}

// Get looks up a cached glossary. The second return value reports whether
// the key was present.
func (s *Store) Get(key string) (glossary.Glossary, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM glossaries WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup failed: %w", err)
	}

	var g glossary.Glossary
	if err := json.Unmarshal([]byte(payload), &g); err != nil {
		// A corrupt entry is treated as a miss so it gets rebuilt
		return nil, false, nil
	}

	return g, true, nil
}

// Put stores a glossary under the given key, replacing any previous entry
// wholesale
func (s *Store) Put(key string, g glossary.Glossary) error {
	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to encode glossary: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO glossaries (key, payload, created_at) VALUES (?, ?, ?)`,
		key, string(payload), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}

	return nil
}
