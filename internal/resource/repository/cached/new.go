// Package cached puts a read-through cache in front of any resource Repository.
package cached

import (
	"sync"

	"resource-api/internal/resource/repository"
	"resource-api/pkg/cache"
	"resource-api/pkg/log"
)

type implRepository[E any] struct {
	next  repository.Repository[E]
	cache cache.Cache
	l     log.Logger
	name  string

	mu       sync.Mutex
	inflight map[string]*flight
}

// flight tracks the store reads of one key that have not been cached yet.
// An invalidation during the read marks it stale so the result is not stored.
type flight struct {
	readers int
	stale   bool
}

// New wraps next. FindByID reads through c; every write invalidates the
// entry of the touched id. Cache failures are logged and never fail a call.
func New[E any](next repository.Repository[E], c cache.Cache, l log.Logger, name string) repository.Repository[E] {
	return &implRepository[E]{
		next:     next,
		cache:    c,
		l:        l,
		name:     name,
		inflight: make(map[string]*flight),
	}
}

func (r *implRepository[E]) key(id string) string {
	return r.name + ":" + id
}

func (r *implRepository[E]) begin(key string) *flight {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.inflight[key]
	if !ok {
		f = &flight{}
		r.inflight[key] = f
	}
	f.readers++
	return f
}

// finish runs store under the lock unless the flight went stale, then
// releases the reader. Holding the lock across store orders it against
// invalidate.
func (r *implRepository[E]) finish(key string, f *flight, store func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if store != nil && !f.stale {
		store()
	}
	f.readers--
	if f.readers == 0 {
		delete(r.inflight, key)
	}
}
