// Package app is the composition root: it registers every component of the
// service in a container.Container.
package app

import (
	"gorm.io/gorm"

	"resource-api/config"
	"resource-api/internal/book"
	"resource-api/internal/httpserver"
	"resource-api/internal/middleware"
	"resource-api/internal/product"
	"resource-api/internal/resource"
	resthttp "resource-api/internal/resource/delivery/http"
	"resource-api/internal/resource/repository"
	"resource-api/pkg/cache"
	"resource-api/pkg/container"
	"resource-api/pkg/log"
	"resource-api/pkg/scope"
)

// Infrastructure keys. DatabaseKey resolves to nil when no DSN is configured
// and CacheKey resolves to nil when caching is disabled.
var (
	ConfigKey       = container.NewKey[*config.Config]("config")
	LoggerKey       = container.NewKey[log.Logger]("logger")
	DatabaseKey     = container.NewKey[*gorm.DB]("database")
	CacheKey        = container.NewKey[cache.Cache]("cache")
	TokenManagerKey = container.NewKey[scope.Manager]("token_manager")
	MetricsKey      = container.NewKey[*middleware.Metrics]("metrics")
	MiddlewareKey   = container.NewKey[middleware.Middleware]("middleware")
	HTTPServerKey   = container.NewKey[*httpserver.HTTPServer]("http_server")
)

// ResourceKeys names the three layers registered for one resource.
type ResourceKeys[E any] struct {
	Repository container.Key[repository.Repository[E]]
	UseCase    container.Key[resource.UseCase[E]]
	Handler    container.Key[*resthttp.Handler[E]]
}

func newResourceKeys[E any](name string) ResourceKeys[E] {
	return ResourceKeys[E]{
		Repository: container.NewKey[repository.Repository[E]](name + ".repository"),
		UseCase:    container.NewKey[resource.UseCase[E]](name + ".usecase"),
		Handler:    container.NewKey[*resthttp.Handler[E]](name + ".handler"),
	}
}

var (
	BookKeys    = newResourceKeys[book.Book](book.Name)
	ProductKeys = newResourceKeys[product.Product](product.Name)
)
