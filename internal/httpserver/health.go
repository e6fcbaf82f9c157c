package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "resource-api/pkg/errors"
	"resource-api/pkg/response"
)

const (
	HealthMessage = "Resource API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "resource-api"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Service not ready")

func probe(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck answers 503 while a backing store is unreachable.
// @Summary Ready Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "A backing store is unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.readiness != nil {
		if err := srv.readiness(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			response.Error(c, errNotReady)
			return
		}
	}
	response.OK(c, probe("ready"))
}

// @Summary Live Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}
