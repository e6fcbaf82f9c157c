package http

import (
	"resource-api/pkg/paginator"
)

func presentPage[E any](page paginator.Result[E], present func(E) any) paginator.Result[any] {
	data := make([]any, 0, len(page.Data))
	for _, e := range page.Data {
		data = append(data, present(e))
	}
	return paginator.Result[any]{
		Data:       data,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}
