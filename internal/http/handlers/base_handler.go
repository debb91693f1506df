// README: Base handler utilities (JSON envelope, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsense/internal/logger"
	"tripsense/internal/modules/catalog"
	"tripsense/internal/modules/planner"
	"tripsense/internal/modules/transport"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeOK(c *gin.Context, key string, v any) {
	writeJSON(c, http.StatusOK, gin.H{"success": true, key: v})
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Success: false, Error: msg})
}

// writeAdviceError maps advisor and catalog failures onto HTTP statuses.
// Unexpected errors are logged and reported generically.
func writeAdviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrDurationOutOfRange):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, transport.ErrNoOptions):
		writeError(c, http.StatusNotFound, "no transport options available for this destination")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "catalog lookup timed out")
	case errors.Is(err, catalog.ErrSourceUnavailable):
		writeError(c, http.StatusBadGateway, "catalog unavailable")
	case errors.Is(err, catalog.ErrUnknownMode):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error(c.Request.Context(), "advisor request failed", err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
