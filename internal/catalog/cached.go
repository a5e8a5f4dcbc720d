// Package catalog - cached.go wraps term fetching with database-backed
// caching.
package catalog

import (
	"context"
	"time"

	"github.com/jpierre/resume-insights/internal/db"
	"github.com/jpierre/resume-insights/internal/types"
)

// CachedClient wraps a Client with a per-term database cache.
type CachedClient struct {
	client    *Client
	db        *db.DB
	cacheTTL  time.Duration
	skipCache bool // for testing or forcing fresh fetches
}

// CachedClientConfig holds configuration for the cached client.
type CachedClientConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
}

// DefaultCachedClientConfig returns sensible defaults.
func DefaultCachedClientConfig() *CachedClientConfig {
	return &CachedClientConfig{
		CacheTTL: db.DefaultCatalogCacheTTL,
	}
}

// NewCachedClient creates a cached catalog client. The database may be nil,
// in which case every fetch goes to the schedule API.
func NewCachedClient(client *Client, database *db.DB, config *CachedClientConfig) *CachedClient {
	if config == nil {
		config = DefaultCachedClientConfig()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultCatalogCacheTTL
	}
	return &CachedClient{
		client:    client,
		db:        database,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// FetchTerm retrieves a term's listings, serving from cache when fresh.
// A successful API fetch refreshes the cache; cache write failures are
// returned to the caller since they signal a broken database, not a broken
// catalog.
func (c *CachedClient) FetchTerm(ctx context.Context, term string) ([]types.CourseRecord, bool, error) {
	if !c.skipCache && c.db != nil {
		cached, err := c.db.GetFreshCatalogCache(ctx, term, c.cacheTTL)
		if err != nil {
			return nil, false, err
		}
		if cached != nil {
			return cached, true, nil
		}
	}

	courses, err := c.client.FetchTerm(ctx, term)
	if err != nil {
		return nil, false, err
	}

	if c.db != nil {
		if err := c.db.SaveCatalogCache(ctx, term, courses); err != nil {
			return nil, false, err
		}
	}

	return courses, false, nil
}
