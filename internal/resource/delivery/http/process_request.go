package http

import (
	"github.com/gin-gonic/gin"

	"resource-api/internal/resource"
	"resource-api/pkg/paginator"
)

type listReq struct {
	Page  int    `form:"page"  binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	Sort  string `form:"sort"  binding:"omitempty,max=64"`
}

// processListReq binds paging and sort, applies the paging policy and reads
// resource filters.
func (h *Handler[E]) processListReq(c *gin.Context) (resource.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return resource.ListInput{}, err
	}

	input := resource.ListInput{
		Pagination: paginator.Params{Page: req.Page, Limit: req.Limit}.Normalize(h.cfg.DefaultLimit, h.cfg.MaxLimit),
		Sort:       req.Sort,
	}
	if h.res.DecodeFilters != nil {
		filters, err := h.res.DecodeFilters(c)
		if err != nil {
			return resource.ListInput{}, err
		}
		input.Filters = filters
	}
	return input, nil
}

// BindJSON decodes and validates the request body into a T.
func BindJSON[T any](c *gin.Context) (T, error) {
	var req T
	err := c.ShouldBindJSON(&req)
	return req, err
}

// BindQuery decodes and validates the query string into a T.
func BindQuery[T any](c *gin.Context) (T, error) {
	var req T
	err := c.ShouldBindQuery(&req)
	return req, err
}
