package http

import (
	"time"

	"resource-api/internal/book"
)

// --- Request DTOs ---

type createReq struct {
	Title         string  `json:"title"          binding:"required,min=1,max=255"`
	Author        string  `json:"author"         binding:"required,min=1,max=255"`
	ISBN          string  `json:"isbn"           binding:"omitempty,max=20"`
	Genre         string  `json:"genre"          binding:"omitempty,max=100"`
	PublishedYear int     `json:"publishedYear"  binding:"omitempty,gte=0,lte=9999"`
	Price         float64 `json:"price"          binding:"omitempty,gte=0"`
}

func (r createReq) toBook() book.Book {
	return book.Book{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		Genre:         r.Genre,
		PublishedYear: r.PublishedYear,
		Price:         r.Price,
	}
}

// toPatch treats a full replacement as a patch where every field is present.
func (r createReq) toPatch() book.Patch {
	return book.Patch{
		Title:         &r.Title,
		Author:        &r.Author,
		ISBN:          &r.ISBN,
		Genre:         &r.Genre,
		PublishedYear: &r.PublishedYear,
		Price:         &r.Price,
	}
}

type patchReq struct {
	Title         *string  `json:"title"          binding:"omitempty,min=1,max=255"`
	Author        *string  `json:"author"         binding:"omitempty,min=1,max=255"`
	ISBN          *string  `json:"isbn"           binding:"omitempty,max=20"`
	Genre         *string  `json:"genre"          binding:"omitempty,max=100"`
	PublishedYear *int     `json:"publishedYear"  binding:"omitempty,gte=0,lte=9999"`
	Price         *float64 `json:"price"          binding:"omitempty,gte=0"`
}

func (r patchReq) toPatch() book.Patch {
	return book.Patch{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		Genre:         r.Genre,
		PublishedYear: r.PublishedYear,
		Price:         r.Price,
	}
}

type filterReq struct {
	Title         string `form:"title"          binding:"omitempty,max=255"`
	Author        string `form:"author"         binding:"omitempty,max=255"`
	Genre         string `form:"genre"          binding:"omitempty,max=100"`
	PublishedYear *int   `form:"publishedYear"  binding:"omitempty,gte=0"`
}

// --- Response DTOs ---

type bookResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn,omitempty"`
	Genre         string    `json:"genre,omitempty"`
	PublishedYear int       `json:"publishedYear,omitempty"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newBookResp(b book.Book) any {
	return bookResp{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Genre:         b.Genre,
		PublishedYear: b.PublishedYear,
		Price:         b.Price,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
