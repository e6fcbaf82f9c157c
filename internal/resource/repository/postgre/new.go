package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"resource-api/internal/resource/repository"
	"resource-api/pkg/log"
)

type implRepository[E any] struct {
	db   *gorm.DB
	l    log.Logger
	name string
}

// New creates a PostgreSQL-backed Repository for E. The table is whatever
// GORM derives for E.
func New[E any](db *gorm.DB, l log.Logger, name string) repository.Repository[E] {
	if db == nil {
		panic("resource/repository/postgre: db is required")
	}
	return &implRepository[E]{db: db, l: l, name: name}
}

// AutoMigrate creates or alters the table behind E.
func AutoMigrate[E any](db *gorm.DB) error {
	return db.AutoMigrate(new(E))
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository[E]) dsn(method string) string {
	return fmt.Sprintf("%s/repository/postgre.%s", r.name, method)
}
