package cache

import (
	"context"
	"sync"
	"time"

	"encore.dev/beta/errs"
	"golang.org/x/sync/singleflight"
)

// Store is a keyed read-through cache. A miss runs the caller-supplied
// populate function exactly once per key, no matter how many callers arrive
// while the fetch is in flight; everyone waits on the same result. Entries are
// removed outright by Clear, never marked stale, so the next Get after a Clear
// always repopulates.
type Store struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	gens    map[string]uint64
	group   singleflight.Group
}

type entry struct {
	value     any
	fetchedAt time.Time
}

type Option func(*Store)

// WithTTL makes entries expire d after a successful populate. Zero (the
// default) means entries live until explicitly cleared.
func WithTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		gens:    make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached value for key, running populate on a miss. A failed
// populate caches nothing and the error propagates to every waiting caller,
// so the next Get retries cleanly.
func (s *Store) Get(ctx context.Context, key string, populate func(context.Context) (any, error)) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && !s.expired(e) {
		s.mu.Unlock()
		return e.value, nil
	}
	// Materialize the generation so ClearAll can discard this key's
	// in-flight result too.
	gen := s.gens[key]
	s.gens[key] = gen
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (any, error) {
		val, perr := populate(ctx)
		if perr != nil {
			return nil, perr
		}
		s.mu.Lock()
		// A Clear that raced with this populate bumped the generation;
		// its result is handed to the waiters but never stored.
		if s.gens[key] == gen {
			s.entries[key] = &entry{value: val, fetchedAt: time.Now()}
		}
		s.mu.Unlock()
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Clear removes the entry for key. An in-flight populate for that key is
// allowed to complete, but its result will not be reused by a later Get.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.gens[key]++
	s.mu.Unlock()
	s.group.Forget(key)
}

// ClearAll removes every entry.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.entries = make(map[string]*entry)
	keys := make([]string, 0, len(s.gens))
	for k := range s.gens {
		s.gens[k]++
		keys = append(keys, k)
	}
	s.mu.Unlock()
	for _, k := range keys {
		s.group.Forget(k)
	}
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && time.Since(e.fetchedAt) > s.ttl
}

// GetAs is the typed form of Store.Get.
func GetAs[T any](ctx context.Context, s *Store, key string, populate func(context.Context) (T, error)) (T, error) {
	var zero T
	v, err := s.Get(ctx, key, func(ctx context.Context) (any, error) {
		return populate(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &errs.Error{Code: errs.Internal, Message: "cache entry type mismatch for key " + key}
	}
	return typed, nil
}
