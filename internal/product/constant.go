package product

import "resource-api/internal/resource"

const (
	Name = "product"
	Path = "/products"

	ScopeRead  = "product:read"
	ScopeWrite = "product:write"

	RoleAdmin = "admin"
)

const (
	ColumnName        = "name"
	ColumnDescription = "description"
	ColumnPrice       = "price"
	ColumnStock       = "stock"
	ColumnCategory    = "category"
	ColumnIsActive    = "is_active"
)

func Options() resource.Options {
	return resource.Options{
		Name: Name,
		SortableColumns: []string{
			ColumnName, ColumnPrice, ColumnStock,
			resource.ColumnCreatedAt, resource.ColumnUpdatedAt,
		},
		DefaultSort: resource.SortField{Column: resource.ColumnCreatedAt, Desc: true},
	}
}
