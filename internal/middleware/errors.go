package middleware

import (
	"net/http"

	pkgErrors "resource-api/pkg/errors"
)

var (
	ErrMissingToken      = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
	ErrInvalidToken      = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	ErrMissingRole       = pkgErrors.NewHTTPError(http.StatusForbidden, "Access denied. No role information found.")
	ErrInsufficientRole  = pkgErrors.NewHTTPError(http.StatusForbidden, "Access denied. Insufficient role.")
	ErrMissingScope      = pkgErrors.NewHTTPError(http.StatusForbidden, "Access denied. No scope information found.")
	ErrInsufficientScope = pkgErrors.NewHTTPError(http.StatusForbidden, "Access denied. Insufficient scope.")
)
