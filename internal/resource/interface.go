package resource

import (
	"context"

	"resource-api/pkg/paginator"
)

// UseCase is the CRUD surface every resource exposes.
type UseCase[E any] interface {
	Create(ctx context.Context, entity E) (E, error)
	List(ctx context.Context, input ListInput) (paginator.Result[E], error)
	Detail(ctx context.Context, id string) (E, error)
	Update(ctx context.Context, id string, patch Patch[E]) (E, error)
	Delete(ctx context.Context, id string) error
}
