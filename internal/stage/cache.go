package stage

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachedLoader wraps a Loader with a process-lifetime cache keyed by
// stage ID. A stage is fetched at most once; concurrent first loads for
// the same ID are deduplicated. Failed loads are not cached.
//
// Cached stages are shared and must not be mutated; the quiz session
// shuffles a copy of the question slice rather than the stage itself.
type CachedLoader struct {
	inner Loader
	sf    singleflight.Group

	mu    sync.RWMutex
	cache map[string]*Stage
}

// NewCachedLoader creates a CachedLoader around inner.
func NewCachedLoader(inner Loader) *CachedLoader {
	return &CachedLoader{
		inner: inner,
		cache: make(map[string]*Stage),
	}
}

func (c *CachedLoader) Load(ctx context.Context, stageID string) (*Stage, error) {
	c.mu.RLock()
	if st, ok := c.cache[stageID]; ok {
		c.mu.RUnlock()
		return st, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do(stageID, func() (any, error) {
		c.mu.RLock()
		if st, ok := c.cache[stageID]; ok {
			c.mu.RUnlock()
			return st, nil
		}
		c.mu.RUnlock()

		st, err := c.inner.Load(ctx, stageID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[stageID] = st
		c.mu.Unlock()
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Stage), nil
}

// StaticLoader serves stages from a fixed map. Used in tests and demos.
type StaticLoader struct {
	stages map[string]*Stage
}

// NewStaticLoader creates a StaticLoader over the given stages.
func NewStaticLoader(stages map[string]*Stage) *StaticLoader {
	return &StaticLoader{stages: stages}
}

func (l *StaticLoader) Load(_ context.Context, stageID string) (*Stage, error) {
	if st, ok := l.stages[stageID]; ok {
		return st, nil
	}
	return nil, ErrUnavailable
}
