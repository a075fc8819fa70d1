// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	stdctx "context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fk-solace/advora/internal/platform/constants"
)

// CachedRepository is a read-through Redis cache wrapped around another
// [Repository]. Only the full scan is cached: point lookups and writes pass
// straight through, and writes invalidate the cached scan.
//
// The directory contract promises a fresh scan per request, so this wrapper
// is opt-in via LIST_SCAN_CACHE_TTL and disabled by default.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps inner with a Redis scan cache using the given TTL.
func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

const scanCacheKey = constants.RedisPrefixListingScan + "all"

// FetchAll serves the scan from Redis when present, falling back to the
// inner store on a miss or any cache error. Cache failures never fail the
// request; they are logged and bypassed.
func (repository *CachedRepository) FetchAll(context stdctx.Context) ([]*Advocate, error) {
	payload, err := repository.client.Get(context, scanCacheKey).Bytes()
	if err == nil {
		var advocates []*Advocate
		if err := json.Unmarshal(payload, &advocates); err == nil {
			return advocates, nil
		}
		repository.logger.Warn("scan_cache_corrupt", slog.String("key", scanCacheKey))
	} else if err != redis.Nil {
		repository.logger.Warn("scan_cache_read_failed", slog.Any("error", err))
	}

	advocates, err := repository.inner.FetchAll(context)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(advocates); err == nil {
		if err := repository.client.Set(context, scanCacheKey, encoded, repository.ttl).Err(); err != nil {
			repository.logger.Warn("scan_cache_write_failed", slog.Any("error", err))
		}
	}

	return advocates, nil
}

// FindByID passes through to the inner store.
func (repository *CachedRepository) FindByID(context stdctx.Context, id string) (*Advocate, error) {
	return repository.inner.FindByID(context, id)
}

// Create passes through and invalidates the cached scan.
func (repository *CachedRepository) Create(context stdctx.Context, a *Advocate) error {
	if err := repository.inner.Create(context, a); err != nil {
		return err
	}
	if err := repository.client.Del(context, scanCacheKey).Err(); err != nil {
		repository.logger.Warn("scan_cache_invalidate_failed", slog.Any("error", err))
	}
	return nil
}
