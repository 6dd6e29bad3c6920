package redis

import (
	"context"
	"errors"

	"github.com/alem-hub/solid-go/internal/domain/student"
	"github.com/alem-hub/solid-go/pkg/logger"
)

// rosterKey is the cache key for the serialized roster.
const rosterKey = PrefixRoster + "list"

// RosterCache is a read-through cache decorator around a student.Repository.
// Reads are served from Redis when possible; writes go to the underlying
// repository and invalidate the cached roster. Cache failures degrade to
// the underlying repository and are logged, never surfaced to callers.
type RosterCache struct {
	inner student.Repository
	cache *Cache
	log   *logger.Logger
}

// NewRosterCache creates a caching decorator around inner.
func NewRosterCache(inner student.Repository, cache *Cache, log *logger.Logger) *RosterCache {
	if log == nil {
		log = logger.Default()
	}
	return &RosterCache{
		inner: inner,
		cache: cache,
		log:   log.With(logger.Component("roster_cache")),
	}
}

// Insert delegates to the underlying repository and invalidates the cache.
func (r *RosterCache) Insert(ctx context.Context, s *student.Student) error {
	if err := r.inner.Insert(ctx, s); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// RemoveAt delegates to the underlying repository and invalidates the cache.
func (r *RosterCache) RemoveAt(ctx context.Context, index int) (*student.Student, error) {
	removed, err := r.inner.RemoveAt(ctx, index)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return removed, nil
}

// List serves the roster from cache, falling back to the repository on miss.
func (r *RosterCache) List(ctx context.Context) ([]*student.Student, error) {
	var cached []*student.Student
	err := r.cache.Get(ctx, rosterKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.log.Warn("roster cache read failed", logger.Err(err))
	}

	list, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if setErr := r.cache.Set(ctx, rosterKey, list, TTLRoster); setErr != nil {
		r.log.Warn("roster cache write failed", logger.Err(setErr))
	}

	return list, nil
}

// Len returns the roster length from the underlying repository.
func (r *RosterCache) Len(ctx context.Context) (int, error) {
	return r.inner.Len(ctx)
}

func (r *RosterCache) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, rosterKey); err != nil {
		r.log.Warn("roster cache invalidation failed", logger.Err(err))
	}
}

// Compile-time interface check.
var _ student.Repository = (*RosterCache)(nil)
