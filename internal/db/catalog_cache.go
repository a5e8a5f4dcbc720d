package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jpierre/resume-insights/internal/types"
)

// SaveCatalogCache replaces the cached course listings for a term.
func (db *DB) SaveCatalogCache(ctx context.Context, term string, courses []types.CourseRecord) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog for term %s: %w", term, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO catalog_cache (term, content, fetched_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (term)
		 DO UPDATE SET content = EXCLUDED.content, fetched_at = NOW()`,
		term, data,
	)
	if err != nil {
		return fmt.Errorf("failed to cache catalog for term %s: %w", term, err)
	}
	return nil
}

// GetFreshCatalogCache loads cached listings for a term if fetched within
// ttl. Returns (nil, nil) on a cache miss or stale entry.
func (db *DB) GetFreshCatalogCache(ctx context.Context, term string, ttl time.Duration) ([]types.CourseRecord, error) {
	var data []byte
	var fetchedAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT content, fetched_at FROM catalog_cache WHERE term = $1`,
		term,
	).Scan(&data, &fetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cached catalog for term %s: %w", term, err)
	}

	if cacheExpired(fetchedAt, ttl) {
		return nil, nil
	}

	var courses []types.CourseRecord
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached catalog for term %s: %w", term, err)
	}
	return courses, nil
}

// cacheExpired reports whether a cached catalog entry fetched at fetchedAt
// has outlived ttl.
func cacheExpired(fetchedAt time.Time, ttl time.Duration) bool {
	return time.Since(fetchedAt) > ttl
}
