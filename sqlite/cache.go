package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/vbadoc"
)

// Ensure CacheService implements vbadoc.Cache at compile time.
var _ vbadoc.Cache = (*CacheService)(nil)

// CacheService implements vbadoc.Cache using SQLite.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// Get implements vbadoc.Cache.
func (s *CacheService) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM cache_entries
		WHERE key = ? AND expires_at > ?
	`, key, s.db.Now().UnixMilli()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, vbadoc.Errorf(vbadoc.ENOTFOUND, "cache entry %q not found", key)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set implements vbadoc.Cache. A non-positive ttl stores nothing.
func (s *CacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return vbadoc.Errorf(vbadoc.EINVALID, "cache key required")
	}
	if ttl <= 0 {
		return nil
	}
	if value == nil {
		value = []byte{}
	}

	now := s.db.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, expires_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at,
			created_at = excluded.created_at
	`, key, value, now.Add(ttl).UnixMilli(), now.UTC().Format(time.RFC3339))
	return err
}

// Keys implements vbadoc.Cache.
func (s *CacheService) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM cache_entries
		WHERE expires_at > ?
		ORDER BY key
	`, s.db.Now().UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// DeleteExpired implements vbadoc.Cache.
func (s *CacheService) DeleteExpired(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM cache_entries WHERE expires_at <= ?
	`, s.db.Now().UnixMilli())
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
