package postgre

import (
	"context"
	"errors"
	"maps"

	"gorm.io/gorm"

	"resource-api/internal/resource"
	repo "resource-api/internal/resource/repository"
)

// FindByID returns the row with the given id. A missing row is (zero, false, nil).
func (r *implRepository[E]) FindByID(ctx context.Context, id string) (E, bool, error) {
	var entity E
	err := r.db.WithContext(ctx).Where(resource.ColumnID+" = ?", id).Take(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindByID"), err)
		return entity, false, err
	}
	return entity, true, nil
}

// FindAllWithCount returns one window of matching rows and the number of
// matching rows overall.
func (r *implRepository[E]) FindAllWithCount(ctx context.Context, opt repo.ListOptions) ([]E, int64, error) {
	var total int64
	if err := r.query(ctx, opt.Filters).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("FindAllWithCount"), err)
		return nil, 0, err
	}

	var entities []E
	err := r.query(ctx, opt.Filters).
		Scopes(withOrder(opt.Sort), withWindow(opt.Offset, opt.Limit)).
		Find(&entities).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindAllWithCount"), err)
		return nil, 0, err
	}
	return entities, total, nil
}

// Insert stores entity as given.
func (r *implRepository[E]) Insert(ctx context.Context, entity E) (E, error) {
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		var zero E
		return zero, err
	}
	return entity, nil
}

// Update writes only the supplied columns and reports how many rows changed.
func (r *implRepository[E]) Update(ctx context.Context, id string, fields resource.Fields) (int64, error) {
	values := maps.Clone(map[string]any(fields))
	delete(values, resource.ColumnID)
	if len(values) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Model(new(E)).Where(resource.ColumnID+" = ?", id).Updates(values)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), res.Error)
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete removes the row with the given id and reports how many rows went.
func (r *implRepository[E]) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where(resource.ColumnID+" = ?", id).Delete(new(E))
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), res.Error)
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
