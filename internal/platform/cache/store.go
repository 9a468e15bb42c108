package cache

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long an aggregated upstream response stays fresh.
const DefaultTTL = 300 * time.Second

// DefaultLoadTimeout bounds a shared load once every caller waiting on it has
// gone away. It covers a full player fan-out with rate-limit waits.
const DefaultLoadTimeout = 10 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// Store is an in-process TTL cache. Stale entries are reported as misses but
// stay in the map until the next Set under the same key overwrites them.
type Store struct {
	mu          sync.RWMutex
	entries     map[string]entry
	ttl         time.Duration
	loadTimeout time.Duration
	flight      singleflight.Group
	logger      *logging.Logger
	now         func() time.Time
}

func NewStore(ttl time.Duration, logger *logging.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		entries:     make(map[string]entry),
		ttl:         ttl,
		loadTimeout: DefaultLoadTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *Store) Get(ctx context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		s.logger.DebugContext(ctx, "cache entry stale", "key", key, "stored_at", e.storedAt)
		return nil, false
	}

	s.logger.DebugContext(ctx, "cache hit", "key", key)
	return e.value, true
}

func (s *Store) Set(ctx context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:    value,
		storedAt: s.now(),
	}
	s.mu.Unlock()
	s.logger.DebugContext(ctx, "cache stored", "key", key)
}

// Len counts stored entries, stale ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the fresh cached value for key or runs loader once per
// key at a time and stores its result. Loader errors are never cached.
//
// The loader runs detached from ctx cancellation: a caller that gives up gets
// ctx.Err() back while the load keeps going for the callers still waiting,
// and its result is cached either way.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, crerr.New("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	ch := s.flight.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()

		if cached, ok := s.Get(loadCtx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(loadCtx, key, loaded)
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.DebugContext(ctx, "cache load shared with concurrent caller", "key", key)
		}
		return res.Val, nil
	}
}

// Load is the typed form of Store.GetOrLoad.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	value, err := s.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, crerr.Newf("cache key %q holds %T", key, value)
	}
	return typed, nil
}

// Lookup is the typed form of Store.Get.
func Lookup[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var zero T
	value, ok := s.Get(ctx, key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
