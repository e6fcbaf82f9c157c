package memory

import (
	"context"
	"fmt"
	"slices"

	"gorm.io/gorm"

	"resource-api/internal/resource"
	repo "resource-api/internal/resource/repository"
)

func (r *implRepository[E, P]) FindByID(_ context.Context, id string) (E, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.rows[id]
	return e, ok, nil
}

func (r *implRepository[E, P]) FindAllWithCount(ctx context.Context, opt repo.ListOptions) ([]E, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]E, 0, len(r.order))
	for _, id := range r.order {
		e := r.rows[id]
		ok, err := r.matches(ctx, &e, opt.Filters)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			matched = append(matched, e)
		}
	}

	if opt.Sort.Column != "" {
		if err := r.sort(ctx, matched, opt.Sort); err != nil {
			return nil, 0, err
		}
	}

	total := int64(len(matched))
	start := min(max(opt.Offset, 0), len(matched))
	end := len(matched)
	if opt.Limit > 0 {
		end = min(start+opt.Limit, len(matched))
	}
	return slices.Clone(matched[start:end]), total, nil
}

func (r *implRepository[E, P]) Insert(_ context.Context, entity E) (E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := idOf[E, P](&entity)
	if _, ok := r.rows[id]; ok {
		var zero E
		return zero, fmt.Errorf("memory: insert %q: %w", id, gorm.ErrDuplicatedKey)
	}
	r.rows[id] = entity
	r.order = append(r.order, id)
	return entity, nil
}

func (r *implRepository[E, P]) Update(ctx context.Context, id string, fields resource.Fields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	rv := structValue(&e)
	for column, value := range fields {
		if column == resource.ColumnID {
			continue
		}
		f, err := r.field(column)
		if err != nil {
			return 0, err
		}
		if err := f.Set(ctx, rv, value); err != nil {
			return 0, fmt.Errorf("memory: set %q: %w", column, err)
		}
	}
	r.rows[id] = e
	return 1, nil
}

func (r *implRepository[E, P]) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
	return 1, nil
}
