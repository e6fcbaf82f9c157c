package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-api/internal/book"
	"resource-api/internal/resource"
)

func testContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestDecodeFilters(t *testing.T) {
	c := testContext(http.MethodGet, "/books?author=Herbert&publishedYear=1965&page=2", "")
	f, err := decodeFilters(c)
	require.NoError(t, err)
	assert.Equal(t, resource.Filters{book.ColumnAuthor: "Herbert", book.ColumnPublishedYear: 1965}, f)

	c = testContext(http.MethodGet, "/books?publishedYear=soon", "")
	_, err = decodeFilters(c)
	assert.Error(t, err)
}

func TestDecodeUpdate(t *testing.T) {
	c := testContext(http.MethodPatch, "/books/1", `{"author":"H.","price":0}`)
	p, err := decodeUpdate(c, true)
	require.NoError(t, err)
	assert.Equal(t, resource.Fields{book.ColumnAuthor: "H.", book.ColumnPrice: float64(0)}, p.Fields())

	c = testContext(http.MethodPut, "/books/1", `{"author":"H."}`)
	_, err = decodeUpdate(c, false)
	assert.Error(t, err)

	c = testContext(http.MethodPut, "/books/1", `{"title":"Dune","author":"Herbert"}`)
	p, err = decodeUpdate(c, false)
	require.NoError(t, err)
	fields := p.Fields()
	assert.Len(t, fields, 6)
	assert.Equal(t, "", fields[book.ColumnGenre])
}

func TestDecodeCreate(t *testing.T) {
	c := testContext(http.MethodPost, "/books", `{"title":"Dune","author":"Herbert","publishedYear":1965}`)
	b, err := decodeCreate(c)
	require.NoError(t, err)
	assert.Equal(t, book.Book{Title: "Dune", Author: "Herbert", PublishedYear: 1965}, b)

	c = testContext(http.MethodPost, "/books", `{"title":"","author":"Herbert"}`)
	_, err = decodeCreate(c)
	assert.Error(t, err)
}

func TestResourcePresent(t *testing.T) {
	res := Resource()
	out := res.Present(book.Book{Model: resource.Model{ID: "b1"}, Title: "Dune"})
	resp, ok := out.(bookResp)
	require.True(t, ok)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "Dune", resp.Title)
}
