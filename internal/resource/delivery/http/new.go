package http

import (
	"github.com/gin-gonic/gin"

	"resource-api/internal/model"
	"resource-api/internal/resource"
	"resource-api/pkg/log"
)

// Resource tells the generic handler how one concrete resource is exposed.
type Resource[E any] struct {
	// Name is the singular noun used in messages, e.g. "book".
	Name string
	// Path is the collection path below the API group, e.g. "/books".
	Path string

	ReadRoles   []string
	WriteRoles  []string
	ReadScopes  []string
	WriteScopes []string

	// DecodeCreate binds and validates a create body.
	DecodeCreate func(c *gin.Context) (E, error)
	// DecodeUpdate binds and validates a PUT (partial=false) or PATCH body.
	DecodeUpdate func(c *gin.Context, partial bool) (resource.Patch[E], error)
	// DecodeFilters reads list filters from the query string. Optional.
	DecodeFilters func(c *gin.Context) (resource.Filters, error)
	// Present shapes an entity for the response body. Optional.
	Present func(E) any
}

// Config carries the request policies shared by every resource.
type Config struct {
	Environment  model.Environment
	DefaultLimit int
	MaxLimit     int
}

type Handler[E any] struct {
	l   log.Logger
	uc  resource.UseCase[E]
	res Resource[E]
	cfg Config
}

// New creates the HTTP handler for one resource.
func New[E any](l log.Logger, uc resource.UseCase[E], res Resource[E], cfg Config) *Handler[E] {
	registerTagNames()
	return &Handler[E]{
		l:   l,
		uc:  uc,
		res: res,
		cfg: cfg,
	}
}

func (h *Handler[E]) present(e E) any {
	if h.res.Present == nil {
		return e
	}
	return h.res.Present(e)
}
