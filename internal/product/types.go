package product

import "resource-api/internal/resource"

// Product is a sellable catalogue item.
type Product struct {
	resource.Model
	Name        string  `gorm:"column:name;size:255;not null" json:"name"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Price       float64 `gorm:"column:price;not null" json:"price"`
	Stock       int     `gorm:"column:stock;not null" json:"stock"`
	Category    string  `gorm:"column:category;size:100;index" json:"category"`
	IsActive    bool    `gorm:"column:is_active;not null" json:"is_active"`
}

// Patch holds the fields a client sent; nil means "leave unchanged".
type Patch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
	IsActive    *bool
}

func (p Patch) Apply(pr *Product) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Stock != nil {
		pr.Stock = *p.Stock
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	if p.IsActive != nil {
		pr.IsActive = *p.IsActive
	}
}

func (p Patch) Fields() resource.Fields {
	f := resource.Fields{}
	if p.Name != nil {
		f[ColumnName] = *p.Name
	}
	if p.Description != nil {
		f[ColumnDescription] = *p.Description
	}
	if p.Price != nil {
		f[ColumnPrice] = *p.Price
	}
	if p.Stock != nil {
		f[ColumnStock] = *p.Stock
	}
	if p.Category != nil {
		f[ColumnCategory] = *p.Category
	}
	if p.IsActive != nil {
		f[ColumnIsActive] = *p.IsActive
	}
	return f
}
