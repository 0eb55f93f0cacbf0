package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Get returns the value stored under key. It implements profile.KV.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %q: %w", key, err)
	}
	return nil
}

// Add atomically adds delta to the integer stored under key and returns
// the new value. Missing, non-numeric or negative values count as 0.
func (s *Store) Add(key string, delta int) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
			value = CAST(MAX(CAST(kv.value AS INTEGER), 0) + ? AS TEXT),
			updated_at = CURRENT_TIMESTAMP`,
		key, strconv.Itoa(delta), delta,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot add to key %q: %w", key, err)
	}

	var value string
	if err := tx.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value); err != nil {
		return 0, fmt.Errorf("storage: cannot read key %q: %w", key, err)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("storage: key %q is not an integer: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit key %q: %w", key, err)
	}
	return n, nil
}

// Keys returns every key starting with prefix, sorted.
func (s *Store) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key",
		len(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("storage: cannot scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
