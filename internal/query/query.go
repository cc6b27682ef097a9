// Package query is a cache-aware read/write layer over the resource
// services. Reads go through a key-value cache keyed by resource identity
// and deduplicate concurrent identical fetches; mutations invalidate the
// affected resource's entries so the next read refetches instead of
// serving stale data.
package query

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrNoID is returned by single-entity reads given a zero identifier,
// before any network call is made. It covers the window where an
// identifier has not resolved yet and must not be treated as a fetch
// failure.
var ErrNoID = errors.New("missing identifier")

// Key is a composite cache key of the form [resource, ...params].
type Key []string

// NewKey builds a Key from its parts. The first part names the resource.
func NewKey(parts ...string) Key { return Key(parts) }

func (k Key) String() string { return strings.Join(k, ":") }

// Resource returns the resource name the key belongs to.
func (k Key) Resource() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

// Cache is a plain key-value store with prefix invalidation. All methods
// must be safe for concurrent use.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
	DeletePrefix(prefix string)
}

// Store coordinates cache reads, in-flight deduplication, and
// invalidation. A generation counter per resource ensures a fetch that
// resolves after an invalidation does not repopulate the cache with a
// result from before it.
type Store struct {
	cache Cache
	group singleflight.Group

	mu   sync.Mutex
	gens map[string]uint64
}

// NewStore creates a Store over the given cache.
func NewStore(cache Cache) *Store {
	return &Store{cache: cache, gens: make(map[string]uint64)}
}

// Invalidate drops the entry for a single key.
func (s *Store) Invalidate(key Key) {
	s.bump(key.Resource())
	s.cache.Delete(key.String())
}

// InvalidateResource drops every entry belonging to a resource: the
// collection key itself plus all parametrized keys under it.
func (s *Store) InvalidateResource(resource string) {
	s.bump(resource)
	s.cache.Delete(resource)
	s.cache.DeletePrefix(resource + ":")
}

func (s *Store) bump(resource string) {
	s.mu.Lock()
	s.gens[resource]++
	s.mu.Unlock()
}

func (s *Store) generation(resource string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[resource]
}

// lookup reads through the cache. Concurrent identical reads share one
// fetch; the result is only cached when no invalidation happened while
// the fetch was in flight.
func lookup[T any](ctx context.Context, s *Store, key Key, fetch func(context.Context) (T, error)) (T, error) {
	k := key.String()
	if v, ok := s.cache.Get(k); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	gen := s.generation(key.Resource())
	v, err, _ := s.group.Do(k, func() (any, error) {
		return fetch(ctx)
	})
	var zero T
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.New("query: cached value has unexpected type")
	}
	if s.generation(key.Resource()) == gen {
		s.cache.Set(k, t)
	}
	return t, nil
}
