package helpers

import (
	"errors"
	"net/http"
	"strconv"

	"auction-insights/internal/historyerrors"
	"auction-insights/utils"

	"github.com/gin-gonic/gin"
)

// QueryInt reads an integer query parameter, falling back to def when
// absent or malformed
func QueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.Warn("invalid integer query parameter, using default", map[string]any{
			"param": name,
			"value": raw,
		})
		return def
	}
	return v
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, historyerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, historyerrors.ErrInvalidCursor):
		return http.StatusBadRequest, "invalid pagination cursor"
	case errors.Is(err, historyerrors.ErrInvalidQuery):
		return http.StatusBadRequest, "invalid history query"
	case errors.Is(err, historyerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
