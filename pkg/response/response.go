package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "resource-api/pkg/errors"
	"resource-api/pkg/paginator"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	resp := NewOKResp(data)
	resp.Message = MessageCreated
	c.JSON(http.StatusCreated, resp)
}

// Deleted sends 200 JSON without data.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, Resp{Success: true, Message: MessageDeleted})
}

// Paginated sends 200 JSON with the page items in data and the paging numbers beside it.
func Paginated[T any](c *gin.Context, result paginator.Result[T]) {
	data := result.Data
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResp{
		Success: true,
		Message: MessageSuccess,
		Data:    data,
		PageMeta: PageMeta{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Error renders err. *errors.HTTPError keeps its status and message; anything
// else becomes an opaque 500.
func Error(c *gin.Context, err error) {
	status, body := errorBody(err)
	c.JSON(status, Resp{Success: false, Error: body})
}

// Abort renders err like Error and stops the handler chain.
func Abort(c *gin.Context, err error) {
	status, body := errorBody(err)
	c.AbortWithStatusJSON(status, Resp{Success: false, Error: body})
}

func errorBody(err error) (int, *ErrorBody) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorBody{
			Message: httpErr.Message,
			Status:  httpErr.Code,
			Details: httpErr.Details,
		}
	}
	return http.StatusInternalServerError, &ErrorBody{
		Message: pkgErrors.MessageInternalServerError,
		Status:  http.StatusInternalServerError,
	}
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	Error(c, pkgErrors.ErrInternalServerError)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context, message string) {
	Abort(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, message))
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context, message string) {
	Abort(c, pkgErrors.NewHTTPError(http.StatusForbidden, message))
}
