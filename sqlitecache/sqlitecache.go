// Package sqlitecache provides a translation cache backed by SQLite,
// so machine translation results survive process restarts.
package sqlitecache

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	cubislang "github.com/CUBETIQ/cubis-lang-go"
)

const schema = `
CREATE TABLE IF NOT EXISTS translation_cache (
	source_text TEXT NOT NULL,
	src_lang    TEXT NOT NULL,
	tgt_lang    TEXT NOT NULL,
	translation TEXT NOT NULL,
	created_at  INTEGER NOT NULL,
	PRIMARY KEY (source_text, src_lang, tgt_lang)
);`

// Store is a persistent translation cache. It satisfies the
// cubislang.Cache interface.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

var _ cubislang.Cache = (*Store)(nil)

// New opens (or creates) the cache database at path. A non-positive
// ttl keeps entries forever.
func New(path string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitecache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitecache: init schema: %w", err)
	}
	return &Store{db: db, ttl: ttl}, nil
}

func (s *Store) Get(text, sourceLocale, targetLocale string) (string, bool) {
	var translation string
	var createdAt int64
	err := s.db.QueryRow(
		`SELECT translation, created_at FROM translation_cache
		 WHERE source_text = ? AND src_lang = ? AND tgt_lang = ?`,
		text, sourceLocale, targetLocale,
	).Scan(&translation, &createdAt)
	if err != nil {
		return "", false
	}
	if s.expired(createdAt) {
		s.db.Exec(
			`DELETE FROM translation_cache
			 WHERE source_text = ? AND src_lang = ? AND tgt_lang = ?`,
			text, sourceLocale, targetLocale,
		)
		return "", false
	}
	return translation, true
}

func (s *Store) Put(text, sourceLocale, targetLocale, translation string) {
	if translation == "" {
		return
	}
	s.db.Exec(
		`INSERT OR REPLACE INTO translation_cache
		 (source_text, src_lang, tgt_lang, translation, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		text, sourceLocale, targetLocale, translation, time.Now().Unix(),
	)
}

func (s *Store) Clear() {
	s.db.Exec(`DELETE FROM translation_cache`)
}

func (s *Store) Size() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translation_cache`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// CleanupExpired removes entries past their TTL and reports how many
// were removed.
func (s *Store) CleanupExpired() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-s.ttl).Unix()
	res, err := s.db.Exec(`DELETE FROM translation_cache WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return int(n)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) expired(createdAt int64) bool {
	return s.ttl > 0 && time.Since(time.Unix(createdAt, 0)) > s.ttl
}
