// Package http exposes products over the generic resource routes. Writes are
// reserved to admins holding product:write.
package http

import (
	"github.com/gin-gonic/gin"

	"resource-api/internal/product"
	"resource-api/internal/resource"
	resthttp "resource-api/internal/resource/delivery/http"
)

func Resource() resthttp.Resource[product.Product] {
	return resthttp.Resource[product.Product]{
		Name:          product.Name,
		Path:          product.Path,
		ReadScopes:    []string{product.ScopeRead},
		WriteRoles:    []string{product.RoleAdmin},
		WriteScopes:   []string{product.ScopeWrite},
		DecodeCreate:  decodeCreate,
		DecodeUpdate:  decodeUpdate,
		DecodeFilters: decodeFilters,
		Present:       newProductResp,
	}
}

func decodeCreate(c *gin.Context) (product.Product, error) {
	req, err := resthttp.BindJSON[createReq](c)
	if err != nil {
		return product.Product{}, err
	}
	return req.toProduct(), nil
}

func decodeUpdate(c *gin.Context, partial bool) (resource.Patch[product.Product], error) {
	if partial {
		req, err := resthttp.BindJSON[patchReq](c)
		if err != nil {
			return nil, err
		}
		return req.toPatch(), nil
	}
	req, err := resthttp.BindJSON[createReq](c)
	if err != nil {
		return nil, err
	}
	return req.toPatch(), nil
}

func decodeFilters(c *gin.Context) (resource.Filters, error) {
	req, err := resthttp.BindQuery[filterReq](c)
	if err != nil {
		return nil, err
	}
	f := resource.Filters{}
	if req.Category != "" {
		f[product.ColumnCategory] = req.Category
	}
	if req.IsActive != nil {
		f[product.ColumnIsActive] = *req.IsActive
	}
	return f, nil
}
