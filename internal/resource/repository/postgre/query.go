package postgre

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resource-api/internal/resource"
)

// query starts a fresh statement on E's table scoped to filters.
func (r *implRepository[E]) query(ctx context.Context, filters resource.Filters) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(E)).Scopes(withFilters(filters))
}

func withFilters(filters resource.Filters) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(filters) == 0 {
			return db
		}
		return db.Where(map[string]any(filters))
	}
}

// withOrder sorts by the requested column and then by id, so equal sort
// keys still page deterministically.
func withOrder(sort resource.SortField) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sort.Column != "" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: sort.Column}, Desc: sort.Desc})
		}
		if sort.Column != resource.ColumnID {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: resource.ColumnID}})
		}
		return db
	}
}

func withWindow(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}
