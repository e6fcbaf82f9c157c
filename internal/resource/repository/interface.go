package repository

import (
	"context"

	"resource-api/internal/resource"
)

// Repository is the storage contract for one resource type. Absence is
// reported through the bool of FindByID, never as an error, and storage
// errors are returned as they come.
type Repository[E any] interface {
	FindByID(ctx context.Context, id string) (E, bool, error)
	FindAllWithCount(ctx context.Context, opt ListOptions) ([]E, int64, error)
	Insert(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, id string, fields resource.Fields) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
