package middleware

import (
	"github.com/gin-gonic/gin"

	"resource-api/pkg/response"
)

// Recovery turns a panic into the standard 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: %v", recovered)
		response.Abort(c, nil)
	})
}
