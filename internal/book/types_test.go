package book

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resource-api/internal/resource"
)

func TestPatch(t *testing.T) {
	author := "H."
	year := 0
	p := Patch{Author: &author, PublishedYear: &year}

	b := Book{Title: "Dune", Author: "Herbert", PublishedYear: 1965}
	p.Apply(&b)

	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "H.", b.Author)
	assert.Equal(t, 0, b.PublishedYear)
	assert.Equal(t, resource.Fields{ColumnAuthor: "H.", ColumnPublishedYear: 0}, p.Fields())
	assert.Empty(t, Patch{}.Fields())
}

func TestOptions(t *testing.T) {
	o := Options()
	assert.True(t, o.Sortable(ColumnTitle))
	assert.False(t, o.Sortable(ColumnISBN))
	assert.Equal(t, resource.ColumnCreatedAt, o.DefaultSort.Column)
}
