package repository

import "resource-api/internal/resource"

// ListOptions holds filter, window and order for FindAllWithCount.
// Filters are applied as AND equality conditions; Sort has already been
// checked against the resource's allow-list.
type ListOptions struct {
	Filters resource.Filters
	Offset  int
	Limit   int
	Sort    resource.SortField
}
