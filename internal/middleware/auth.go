package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"resource-api/pkg/log"
	"resource-api/pkg/response"
	"resource-api/pkg/scope"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
	payloadKey          = "scope.payload"
)

// Auth verifies the bearer token and attaches its payload to the request.
// The header must be exactly "Bearer <token>"; the scheme is matched
// case-insensitively.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader(authorizationHeader))
		if !ok {
			m.l.Debugf(ctx, "middleware.Auth: %s %s without usable bearer token", c.Request.Method, c.FullPath())
			response.Abort(c, ErrMissingToken)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth Verify: %v", err)
			response.Abort(c, ErrInvalidToken)
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = log.SetUserID(ctx, payload.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(payloadKey, payload)
		c.Next()
	}
}

// AuthorizeRole lets the request through only when the authenticated role is
// one of roles. It must run after Auth.
func (m Middleware) AuthorizeRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := GetPayload(c)
		if !ok || payload.Role == "" {
			m.l.Warnf(c.Request.Context(), "middleware.AuthorizeRole: no role on request")
			response.Abort(c, ErrMissingRole)
			return
		}
		if !payload.HasRole(roles...) {
			m.l.Warnf(c.Request.Context(), "middleware.AuthorizeRole: role %q not in %v", payload.Role, roles)
			response.Abort(c, ErrInsufficientRole)
			return
		}
		c.Next()
	}
}

// AuthorizeScope lets the request through only when the token carries at
// least one of scopes. It must run after Auth.
func (m Middleware) AuthorizeScope(scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := GetPayload(c)
		if !ok || payload.Scopes == nil {
			m.l.Warnf(c.Request.Context(), "middleware.AuthorizeScope: no scopes on request")
			response.Abort(c, ErrMissingScope)
			return
		}
		if !payload.HasAnyScope(scopes...) {
			m.l.Warnf(c.Request.Context(), "middleware.AuthorizeScope: scopes %v share nothing with %v", payload.Scopes, scopes)
			response.Abort(c, ErrInsufficientScope)
			return
		}
		c.Next()
	}
}

// GetPayload returns the payload Auth attached to c.
func GetPayload(c *gin.Context) (scope.Payload, bool) {
	v, ok := c.Get(payloadKey)
	if !ok {
		return scope.GetPayloadFromContext(c.Request.Context())
	}
	p, ok := v.(scope.Payload)
	return p, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
