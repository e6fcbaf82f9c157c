package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Create stamps a fresh id and timestamps onto entity and stores it.
func (uc *implUseCase[E, P]) Create(ctx context.Context, entity E) (E, error) {
	m := P(&entity).GetModel()
	now := uc.clock()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	created, err := uc.repo.Insert(ctx, entity)
	if err != nil {
		uc.l.Errorf(ctx, "%s.uc.Create Insert: %v", uc.opts.Name, err)
		var zero E
		return zero, err
	}
	return created, nil
}
