package usecase

import (
	"context"
	"fmt"
	"maps"
	"time"

	"resource-api/internal/resource"
)

// Detail retrieves one entity. Returns resource.ErrNotFound when absent.
func (uc *implUseCase[E, P]) Detail(ctx context.Context, id string) (E, error) {
	entity, found, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s.uc.Detail FindByID: %v", uc.opts.Name, err)
		var zero E
		return zero, err
	}
	if !found {
		var zero E
		return zero, fmt.Errorf("%s %q: %w", uc.opts.Name, id, resource.ErrNotFound)
	}
	return entity, nil
}

// Update applies patch to the stored entity and writes the changed columns.
// Fields absent from patch keep their values; ID and CreatedAt never change.
func (uc *implUseCase[E, P]) Update(ctx context.Context, id string, patch resource.Patch[E]) (E, error) {
	var zero E
	entity, err := uc.Detail(ctx, id)
	if err != nil {
		return zero, err
	}

	m := P(&entity).GetModel()
	kept := *m
	patch.Apply(&entity)
	m.ID = kept.ID
	m.CreatedAt = kept.CreatedAt
	m.UpdatedAt = uc.nextUpdatedAt(kept.UpdatedAt)

	fields := maps.Clone(patch.Fields())
	if fields == nil {
		fields = resource.Fields{}
	}
	delete(fields, resource.ColumnID)
	delete(fields, resource.ColumnCreatedAt)
	fields[resource.ColumnUpdatedAt] = m.UpdatedAt

	affected, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		uc.l.Errorf(ctx, "%s.uc.Update Update: %v", uc.opts.Name, err)
		return zero, err
	}
	if affected == 0 {
		uc.l.Warnf(ctx, "%s.uc.Update: %s %q vanished between read and write", uc.opts.Name, uc.opts.Name, id)
		return zero, fmt.Errorf("%s %q: %w", uc.opts.Name, id, resource.ErrConcurrentModification)
	}
	return entity, nil
}

// Delete removes one entity. Returns resource.ErrNotFound when absent.
func (uc *implUseCase[E, P]) Delete(ctx context.Context, id string) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}

	affected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s.uc.Delete Delete: %v", uc.opts.Name, err)
		return err
	}
	if affected == 0 {
		uc.l.Warnf(ctx, "%s.uc.Delete: %s %q vanished between read and delete", uc.opts.Name, uc.opts.Name, id)
		return fmt.Errorf("%s %q: %w", uc.opts.Name, id, resource.ErrConcurrentModification)
	}
	return nil
}

// nextUpdatedAt keeps UpdatedAt strictly increasing even when the clock has
// not moved since the previous write.
func (uc *implUseCase[E, P]) nextUpdatedAt(prev time.Time) time.Time {
	now := uc.clock()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}
