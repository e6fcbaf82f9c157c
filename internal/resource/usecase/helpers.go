package usecase

import (
	"fmt"
	"time"

	"resource-api/internal/resource"
)

// clock returns now in UTC at the precision PostgreSQL keeps, so values
// handed back to callers equal what a later read returns.
func (uc *implUseCase[E, P]) clock() time.Time {
	return uc.now().UTC().Truncate(time.Microsecond)
}

// resolveSort parses raw and checks it against the resource's allow-list.
// An empty raw falls back to the resource default.
func (uc *implUseCase[E, P]) resolveSort(raw string) (resource.SortField, error) {
	sf, err := resource.ParseSort(raw)
	if err != nil {
		return resource.SortField{}, err
	}
	if sf.Column == "" {
		return uc.opts.DefaultSort, nil
	}
	if !uc.opts.Sortable(sf.Column) {
		return resource.SortField{}, fmt.Errorf("%w: %q is not sortable", resource.ErrInvalidSort, sf.Column)
	}
	return sf, nil
}
