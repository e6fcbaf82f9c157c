package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	pkgErrors "resource-api/pkg/errors"
	"resource-api/pkg/response"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrRouteNotFound)
	})
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.Recovery(),
		srv.mw.RequestID(),
		srv.mw.Logger(),
		srv.mw.CORS(),
		srv.mw.RateLimit(),
		srv.mw.Metrics(),
	)

	ctx := context.Background()
	if srv.environment.IsProduction() {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", srv.metrics.Handler())
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group(apiPrefix)
	for _, r := range srv.registrars {
		r.RegisterRoutes(api, srv.mw)
	}
	srv.l.Infof(context.Background(), "%d resource(s) registered under %s", len(srv.registrars), apiPrefix)
}
