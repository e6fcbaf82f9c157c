package book

import "resource-api/internal/resource"

// Book is the illustrative catalogue entry.
type Book struct {
	resource.Model
	Title         string  `gorm:"column:title;size:255;not null" json:"title"`
	Author        string  `gorm:"column:author;size:255;not null;index" json:"author"`
	ISBN          string  `gorm:"column:isbn;size:20" json:"isbn"`
	Genre         string  `gorm:"column:genre;size:100;index" json:"genre"`
	PublishedYear int     `gorm:"column:published_year" json:"published_year"`
	Price         float64 `gorm:"column:price" json:"price"`
}

// Patch holds the fields a client sent; nil means "leave unchanged".
type Patch struct {
	Title         *string
	Author        *string
	ISBN          *string
	Genre         *string
	PublishedYear *int
	Price         *float64
}

// Apply writes the present fields onto b.
func (p Patch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.PublishedYear != nil {
		b.PublishedYear = *p.PublishedYear
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
}

// Fields reports the present fields by column.
func (p Patch) Fields() resource.Fields {
	f := resource.Fields{}
	if p.Title != nil {
		f[ColumnTitle] = *p.Title
	}
	if p.Author != nil {
		f[ColumnAuthor] = *p.Author
	}
	if p.ISBN != nil {
		f[ColumnISBN] = *p.ISBN
	}
	if p.Genre != nil {
		f[ColumnGenre] = *p.Genre
	}
	if p.PublishedYear != nil {
		f[ColumnPublishedYear] = *p.PublishedYear
	}
	if p.Price != nil {
		f[ColumnPrice] = *p.Price
	}
	return f
}
