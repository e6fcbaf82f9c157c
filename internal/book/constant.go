package book

import "resource-api/internal/resource"

const (
	Name = "book"
	Path = "/books"

	ScopeRead  = "book:read"
	ScopeWrite = "book:write"

	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

const (
	ColumnTitle         = "title"
	ColumnAuthor        = "author"
	ColumnISBN          = "isbn"
	ColumnGenre         = "genre"
	ColumnPublishedYear = "published_year"
	ColumnPrice         = "price"
)

// Options describes books to the generic resource layers.
func Options() resource.Options {
	return resource.Options{
		Name: Name,
		SortableColumns: []string{
			ColumnTitle, ColumnAuthor, ColumnPublishedYear, ColumnPrice,
			resource.ColumnCreatedAt, resource.ColumnUpdatedAt,
		},
		DefaultSort: resource.SortField{Column: resource.ColumnCreatedAt},
	}
}
