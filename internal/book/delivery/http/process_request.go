package http

import (
	"github.com/gin-gonic/gin"

	"resource-api/internal/book"
	"resource-api/internal/resource"
	resthttp "resource-api/internal/resource/delivery/http"
)

func decodeCreate(c *gin.Context) (book.Book, error) {
	req, err := resthttp.BindJSON[createReq](c)
	if err != nil {
		return book.Book{}, err
	}
	return req.toBook(), nil
}

func decodeUpdate(c *gin.Context, partial bool) (resource.Patch[book.Book], error) {
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
	if req.Title != "" {
		f[book.ColumnTitle] = req.Title
	}
	if req.Author != "" {
		f[book.ColumnAuthor] = req.Author
	}
	if req.Genre != "" {
		f[book.ColumnGenre] = req.Genre
	}
	if req.PublishedYear != nil {
		f[book.ColumnPublishedYear] = *req.PublishedYear
	}
	return f, nil
}
