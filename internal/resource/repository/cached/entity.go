package cached

import (
	"context"
	"encoding/json"

	"resource-api/internal/resource"
	repo "resource-api/internal/resource/repository"
)

func (r *implRepository[E]) FindByID(ctx context.Context, id string) (E, bool, error) {
	key := r.key(id)
	if raw, ok, err := r.cache.Get(ctx, key); err != nil {
		r.l.Warnf(ctx, "%s/repository/cached.FindByID get %s: %v", r.name, key, err)
	} else if ok {
		var e E
		decodeErr := json.Unmarshal(raw, &e)
		if decodeErr == nil {
			return e, true, nil
		}
		r.l.Warnf(ctx, "%s/repository/cached.FindByID decode %s: %v", r.name, key, decodeErr)
	}

	f := r.begin(key)
	e, found, err := r.next.FindByID(ctx, id)
	if err != nil || !found {
		r.finish(key, f, nil)
		return e, found, err
	}

	raw, err := json.Marshal(e)
	if err != nil {
		r.finish(key, f, nil)
		r.l.Warnf(ctx, "%s/repository/cached.FindByID encode %s: %v", r.name, key, err)
		return e, true, nil
	}
	r.finish(key, f, func() {
		if err := r.cache.Set(ctx, key, raw); err != nil {
			r.l.Warnf(ctx, "%s/repository/cached.FindByID set %s: %v", r.name, key, err)
		}
	})
	return e, true, nil
}

func (r *implRepository[E]) FindAllWithCount(ctx context.Context, opt repo.ListOptions) ([]E, int64, error) {
	return r.next.FindAllWithCount(ctx, opt)
}

func (r *implRepository[E]) Insert(ctx context.Context, entity E) (E, error) {
	return r.next.Insert(ctx, entity)
}

func (r *implRepository[E]) Update(ctx context.Context, id string, fields resource.Fields) (int64, error) {
	n, err := r.next.Update(ctx, id, fields)
	r.invalidate(ctx, id)
	return n, err
}

func (r *implRepository[E]) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return n, err
}

// invalidate drops the cached entry and poisons any read of id still in
// flight, so a row read before the write cannot be cached after it.
func (r *implRepository[E]) invalidate(ctx context.Context, id string) {
	key := r.key(id)
	r.mu.Lock()
	if f, ok := r.inflight[key]; ok {
		f.stale = true
	}
	r.mu.Unlock()

	if err := r.cache.Delete(ctx, key); err != nil {
		r.l.Warnf(ctx, "%s/repository/cached.invalidate %s: %v", r.name, key, err)
	}
}
