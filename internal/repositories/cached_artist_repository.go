package repositories

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"melodex/internal/cache"
	"melodex/internal/models"
)

const artistCacheTTL = 5 * time.Minute

// cachedArtistRepository decorates an ArtistRepository with a read-through
// cache on FindByID. Artists are the most-read collection (every album and
// song write resolves an artist reference), so they get the cache. Cache
// failures degrade to the underlying repository and are logged, never
// surfaced.
type cachedArtistRepository struct {
	inner ArtistRepository
	cache cache.Cache
}

// NewCachedArtistRepository wraps an artist repository with a cache
func NewCachedArtistRepository(inner ArtistRepository, c cache.Cache) ArtistRepository {
	return &cachedArtistRepository{inner: inner, cache: c}
}

func artistCacheKey(id string) string {
	return "artist:" + id
}

func (r *cachedArtistRepository) FindByID(ctx context.Context, id string) (*models.Artist, error) {
	key := artistCacheKey(id)

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("artist cache read failed", "key", key, "error", err)
	} else if data != nil {
		var artist models.Artist
		if err := json.Unmarshal(data, &artist); err == nil {
			return &artist, nil
		}
		slog.Warn("artist cache entry corrupt, dropping", "key", key)
		_ = r.cache.Delete(ctx, key)
	}

	artist, err := r.inner.FindByID(ctx, id)
	if err != nil || artist == nil {
		return artist, err
	}

	if data, err := json.Marshal(artist); err == nil {
		if err := r.cache.Set(ctx, key, data, artistCacheTTL); err != nil {
			slog.Warn("artist cache write failed", "key", key, "error", err)
		}
	}
	return artist, nil
}

func (r *cachedArtistRepository) Insert(ctx context.Context, artist *models.Artist) error {
	return r.inner.Insert(ctx, artist)
}

func (r *cachedArtistRepository) Replace(ctx context.Context, id string, artist *models.Artist) (bool, error) {
	matched, err := r.inner.Replace(ctx, id, artist)
	if err == nil {
		r.invalidate(ctx, id)
	}
	return matched, err
}

func (r *cachedArtistRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.inner.Delete(ctx, id)
	if err == nil {
		r.invalidate(ctx, id)
	}
	return deleted, err
}

func (r *cachedArtistRepository) FindByName(ctx context.Context, name string) (*models.Artist, error) {
	return r.inner.FindByName(ctx, name)
}

func (r *cachedArtistRepository) List(ctx context.Context, filter ArtistFilter, page PageOptions) ([]*models.Artist, int64, error) {
	return r.inner.List(ctx, filter, page)
}

func (r *cachedArtistRepository) Count(ctx context.Context) (int64, error) {
	return r.inner.Count(ctx)
}

func (r *cachedArtistRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, artistCacheKey(id)); err != nil {
		slog.Warn("artist cache invalidation failed", "id", id, "error", err)
	}
}
