// Package cache keeps the fetched catalog list under a single key and
// refreshes it on demand. Reads go through the cache, writes never touch it
// directly: a successful mutation invalidates the entry and the next read
// refetches.
package cache

import (
	"context"
	"sync"
	"time"

	"sushimenu/internal/logger"
	"sushimenu/internal/sushi"

	"go.uber.org/zap"
)

// Fetcher loads the current catalog list. client.Catalog satisfies it.
type Fetcher interface {
	GetAll(ctx context.Context) ([]sushi.Sushi, error)
}

// Snapshot is the observable cache state at one point in time. Items holds
// the last successfully fetched list even while the entry is stale or the
// latest refetch has failed.
type Snapshot struct {
	Items     []sushi.Sushi
	Loaded    bool
	Stale     bool
	FetchedAt time.Time
	Err       error
}

type Store struct {
	fetcher Fetcher

	mu        sync.Mutex
	items     []sushi.Sushi
	loaded    bool
	stale     bool
	fetchedAt time.Time
	lastErr   error
}

func New(fetcher Fetcher) *Store {
	return &Store{fetcher: fetcher}
}

// Get returns the cached list, fetching first when the entry is missing or
// stale. A failed fetch leaves the previously cached list in place and is
// reported through the error and the snapshot; the cache only ever changes
// on confirmed success.
func (s *Store) Get(ctx context.Context) ([]sushi.Sushi, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && !s.stale {
		return s.items, nil
	}

	log := logger.FromCtx(ctx).With(zap.String("cache_key", "get-all-sushi"))
	log.Debug("cache miss, fetching", zap.Bool("stale", s.stale))

	items, err := s.fetcher.GetAll(ctx)
	if err != nil {
		log.Warn("catalog fetch failed, keeping previous list", zap.Error(err))
		s.lastErr = err
		return nil, err
	}

	s.items = items
	s.loaded = true
	s.stale = false
	s.fetchedAt = time.Now()
	s.lastErr = nil

	log.Debug("cache refreshed", zap.Int("count", len(items)))
	return s.items, nil
}

// Invalidate marks the entry stale. It is a pure signal: no data changes
// until the next Get refetches.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Items:     s.items,
		Loaded:    s.loaded,
		Stale:     s.stale,
		FetchedAt: s.fetchedAt,
		Err:       s.lastErr,
	}
}
