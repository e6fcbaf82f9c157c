package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"resource-api/internal/resource"
	pkgErrors "resource-api/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *Handler[E]) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, resource.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, h.title()+" not found")
	case errors.Is(err, resource.ErrInvalidSort):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid sort parameter").WithDetails(err.Error())
	case errors.Is(err, resource.ErrConcurrentModification):
		return pkgErrors.NewHTTPError(http.StatusConflict, h.title()+" was modified concurrently, retry the request")
	default:
		return pkgErrors.NewInternalError(err, !h.cfg.Environment.IsProduction())
	}
}

// mapBindError translates binding and validation failures into 400s.
func (h *Handler[E]) mapBindError(err error) error {
	var (
		httpErr   *pkgErrors.HTTPError
		verrs     validator.ValidationErrors
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		numErr    *strconv.NumError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &verrs):
		return pkgErrors.NewValidationError(fieldErrors(verrs))
	case errors.Is(err, io.EOF):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Malformed JSON body")
	case errors.As(err, &typeErr):
		return pkgErrors.NewValidationError([]pkgErrors.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be a %s", typeErr.Type.Kind()),
		}})
	case errors.As(err, &numErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameter").WithDetails(numErr.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request").WithDetails(err.Error())
	}
}

func (h *Handler[E]) logUseCaseError(c *gin.Context, method string, err error) {
	ctx := c.Request.Context()
	if errors.Is(err, resource.ErrNotFound) {
		h.l.Debugf(ctx, "%s.delivery.%s: %v", h.res.Name, method, err)
		return
	}
	h.l.Errorf(ctx, "%s.delivery.%s: %v", h.res.Name, method, err)
}

func (h *Handler[E]) title() string {
	if h.res.Name == "" {
		return "Resource"
	}
	return strings.ToUpper(h.res.Name[:1]) + h.res.Name[1:]
}

func fieldErrors(verrs validator.ValidationErrors) []pkgErrors.FieldError {
	out := make([]pkgErrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, pkgErrors.FieldError{
			Field:   fe.Field(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "numeric":
		return "must contain only digits"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}

var tagNamesOnce sync.Once

// registerTagNames makes validation errors report json (or form) names
// instead of Go field names.
func registerTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}
