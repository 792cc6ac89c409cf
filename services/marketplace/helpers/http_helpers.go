package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-bff/internal/marketerrors"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/utils"
)

// ActingUserKey is the gin context key holding the caller's user id.
const ActingUserKey = "actingUserID"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrUnknownResource):
		return http.StatusNotFound, "unknown resource"
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "document not found"
	case errors.Is(err, marketerrors.ErrUnsupported):
		return http.StatusMethodNotAllowed, "operation not supported"
	case errors.Is(err, marketerrors.ErrInvalidPayload):
		return http.StatusBadRequest, "invalid request payload"
	case errors.Is(err, timestamp.ErrMalformed):
		return http.StatusInternalServerError, "malformed document"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ActingUser returns the user id the request acts as, or "" for anonymous
func ActingUser(c *gin.Context) string {
	return c.GetString(ActingUserKey)
}

// QueryParams flattens the query string to its first value per key
func QueryParams(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
