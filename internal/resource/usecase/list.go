package usecase

import (
	"context"

	"resource-api/internal/resource"
	repo "resource-api/internal/resource/repository"
	"resource-api/pkg/paginator"
)

// List returns one page of entities matching input.Filters.
func (uc *implUseCase[E, P]) List(ctx context.Context, input resource.ListInput) (paginator.Result[E], error) {
	sort, err := uc.resolveSort(input.Sort)
	if err != nil {
		return paginator.Result[E]{}, err
	}

	window := paginator.ToOffsetLimit(input.Pagination)
	items, total, err := uc.repo.FindAllWithCount(ctx, repo.ListOptions{
		Filters: input.Filters,
		Offset:  window.Offset,
		Limit:   window.Limit,
		Sort:    sort,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s.uc.List FindAllWithCount: %v", uc.opts.Name, err)
		return paginator.Result[E]{}, err
	}

	page := max(input.Pagination.Page, 1)
	return paginator.BuildResult(items, total, page, window.Limit), nil
}
