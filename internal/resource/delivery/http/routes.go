package http

import (
	"slices"

	"github.com/gin-gonic/gin"

	"resource-api/internal/middleware"
)

// RegisterRoutes mounts the CRUD routes under rg. Every route authenticates
// first, then checks role, then scope; empty role or scope lists skip that
// check.
func (h *Handler[E]) RegisterRoutes(rg *gin.RouterGroup, mw middleware.Middleware) {
	read := guards(mw, h.res.ReadRoles, h.res.ReadScopes)
	write := guards(mw, h.res.WriteRoles, h.res.WriteScopes)

	g := rg.Group(h.res.Path)
	{
		g.POST("", with(write, h.Create)...)
		g.GET("", with(read, h.List)...)
		g.GET("/:id", with(read, h.Detail)...)
		g.PUT("/:id", with(write, h.Replace)...)
		g.PATCH("/:id", with(write, h.Patch)...)
		g.DELETE("/:id", with(write, h.Delete)...)
	}
}

func guards(mw middleware.Middleware, roles, scopes []string) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{mw.Auth()}
	if len(roles) > 0 {
		chain = append(chain, mw.AuthorizeRole(roles...))
	}
	if len(scopes) > 0 {
		chain = append(chain, mw.AuthorizeScope(scopes...))
	}
	return chain
}

func with(chain []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clip(chain), h)
}
