package http

import (
	"time"

	"resource-api/internal/product"
)

type createReq struct {
	Name        string  `json:"name"        binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=5000"`
	Price       float64 `json:"price"       binding:"gte=0"`
	Stock       int     `json:"stock"       binding:"gte=0"`
	Category    string  `json:"category"    binding:"required,max=100"`
	IsActive    *bool   `json:"isActive"`
}

func (r createReq) isActive() bool {
	return r.IsActive == nil || *r.IsActive
}

func (r createReq) toProduct() product.Product {
	return product.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
		IsActive:    r.isActive(),
	}
}

func (r createReq) toPatch() product.Patch {
	active := r.isActive()
	return product.Patch{
		Name:        &r.Name,
		Description: &r.Description,
		Price:       &r.Price,
		Stock:       &r.Stock,
		Category:    &r.Category,
		IsActive:    &active,
	}
}

type patchReq struct {
	Name        *string  `json:"name"        binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Price       *float64 `json:"price"       binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       binding:"omitempty,gte=0"`
	Category    *string  `json:"category"    binding:"omitempty,min=1,max=100"`
	IsActive    *bool    `json:"isActive"`
}

func (r patchReq) toPatch() product.Patch {
	return product.Patch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
		IsActive:    r.IsActive,
	}
}

type filterReq struct {
	Category string `form:"category" binding:"omitempty,max=100"`
	IsActive *bool  `form:"isActive"`
}

type productResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProductResp(p product.Product) any {
	return productResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
