package resource

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"resource-api/pkg/paginator"
)

// --- Entity ---

// Model carries the bookkeeping columns every persisted resource embeds.
// ID is assigned once at create; UpdatedAt never precedes CreatedAt.
type Model struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// GetModel gives generic code access to the embedded Model.
func (m *Model) GetModel() *Model {
	return m
}

// Entity is implemented by a pointer to any struct embedding Model.
type Entity interface {
	GetModel() *Model
}

// EntityPtr ties a resource struct E to its pointer type so generic code can
// hold values and still reach the embedded Model.
type EntityPtr[E any] interface {
	*E
	Entity
}

// Column names of Model as stored.
const (
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
)

// Fields maps storage column names to new values.
type Fields map[string]any

// Filters maps storage column names to the value a row must equal.
type Filters map[string]any

// --- Sorting ---

// SortField orders a listing by one column.
type SortField struct {
	Column string
	Desc   bool
}

func (s SortField) String() string {
	if s.Desc {
		return "-" + s.Column
	}
	return s.Column
}

// ParseSort reads "column" as ascending and "-column" as descending. An empty
// string yields the zero SortField.
func ParseSort(raw string) (SortField, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortField{}, nil
	}
	sf := SortField{Column: raw}
	if strings.HasPrefix(raw, "-") {
		sf = SortField{Column: raw[1:], Desc: true}
	}
	if sf.Column == "" || strings.ContainsAny(sf.Column, " ,;\"'") {
		return SortField{}, fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}
	return sf, nil
}

// --- UseCase inputs ---

// ListInput is what a client asks of a listing. Pagination is expected to
// already carry the caller's default and cap.
type ListInput struct {
	Pagination paginator.Params
	Filters    Filters
	Sort       string
}

// Patch is a presence-aware change set. Apply writes only the fields the
// client supplied, explicit zero values included; Fields reports the same
// fields keyed by column.
type Patch[E any] interface {
	Apply(entity *E)
	Fields() Fields
}

// Options describes a resource to the generic layers.
type Options struct {
	// Name is used in error messages and cache keys, e.g. "book".
	Name            string
	SortableColumns []string
	DefaultSort     SortField
}

// Sortable reports whether column may be used in a sort.
func (o Options) Sortable(column string) bool {
	return slices.Contains(o.SortableColumns, column)
}
