// Package http exposes books over the generic resource routes.
//
// Reads need the book:read scope. Writes need the admin or editor role and
// the book:write scope.
package http

import (
	"resource-api/internal/book"
	resthttp "resource-api/internal/resource/delivery/http"
)

// Resource returns the descriptor the generic handler serves books with.
func Resource() resthttp.Resource[book.Book] {
	return resthttp.Resource[book.Book]{
		Name:          book.Name,
		Path:          book.Path,
		ReadScopes:    []string{book.ScopeRead},
		WriteRoles:    []string{book.RoleAdmin, book.RoleEditor},
		WriteScopes:   []string{book.ScopeWrite},
		DecodeCreate:  decodeCreate,
		DecodeUpdate:  decodeUpdate,
		DecodeFilters: decodeFilters,
		Present:       newBookResp,
	}
}
