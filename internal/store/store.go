package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Store is a typed key-value layer over a single sqlite file. Each logical
// entity (profile, meals, day stats, ...) lives in one JSON blob keyed under
// the application namespace.
type Store struct {
	db  *sql.DB
	log *logrus.Logger
}

// KeyPrefix namespaces every blob so export/import can filter foreign keys
// out of a restored dump.
const KeyPrefix = "quantix:"

func Open(path string, log *logrus.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the deserialized value for key, or def when the key is absent
// or its blob does not parse. A corrupt blob is logged and treated as absent,
// never surfaced to the caller.
func Get[T any](s *Store, key string, def T) T {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, KeyPrefix+key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.WithError(err).WithField("key", key).Warn("kv read failed, using default")
		}
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("corrupt kv blob, using default")
		return def
	}
	return out
}

// Set serializes value and upserts it under key. On failure the previously
// persisted value remains untouched and the error is returned so the caller
// can warn the user.
func Set[T any](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.Exec(`
INSERT INTO kv(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, KeyPrefix+key, string(raw))
	if err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// RawAll returns every namespaced key with its raw JSON blob, keyed without
// the namespace prefix. Used by export.
func (s *Store) RawAll() (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(`SELECT key, value FROM kv WHERE key LIKE ? ORDER BY key ASC`, KeyPrefix+"%")
	if err != nil {
		return nil, fmt.Errorf("list kv blobs: %w", err)
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scan kv blob: %w", err)
		}
		out[key[len(KeyPrefix):]] = json.RawMessage(raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kv blobs: %w", err)
	}
	return out, nil
}

// RawReplace validates every incoming blob and then writes the whole set in
// one transaction: a single bad blob aborts the import with nothing written.
func (s *Store) RawReplace(blobs map[string]json.RawMessage) error {
	for key, raw := range blobs {
		if !json.Valid(raw) {
			return fmt.Errorf("invalid JSON for key %q", key)
		}
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	for key, raw := range blobs {
		if _, err := tx.Exec(`
INSERT INTO kv(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, KeyPrefix+key, string(raw)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("import key %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}
