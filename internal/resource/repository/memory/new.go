// Package memory keeps resources in process memory. Column names resolve
// through the same GORM schema the SQL repository uses, so filters, sorts
// and partial updates behave alike on both.
package memory

import (
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm/schema"

	"resource-api/internal/resource"
	"resource-api/internal/resource/repository"
)

type implRepository[E any, P resource.EntityPtr[E]] struct {
	mu     sync.RWMutex
	schema *schema.Schema
	rows   map[string]E
	order  []string
}

// New creates an empty in-memory Repository for E.
func New[E any, P resource.EntityPtr[E]]() (repository.Repository[E], error) {
	sch, err := schema.Parse(new(E), &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("memory: parse schema of %T: %w", *new(E), err)
	}
	return &implRepository[E, P]{
		schema: sch,
		rows:   make(map[string]E),
	}, nil
}

func (r *implRepository[E, P]) field(column string) (*schema.Field, error) {
	f := r.schema.LookUpField(column)
	if f == nil {
		return nil, fmt.Errorf("memory: unknown column %q on %s", column, r.schema.Table)
	}
	return f, nil
}

func idOf[E any, P resource.EntityPtr[E]](e *E) string {
	return P(e).GetModel().ID
}

// structValue returns the addressable struct behind e, as GORM field
// accessors expect.
func structValue[E any](e *E) reflect.Value {
	return reflect.ValueOf(e).Elem()
}
