package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps a service-layer error onto the HTTP status for its
// sentinel. Anything unmatched is a 500 with the fallback message; the real
// error is logged, never leaked.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient funds"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrNoData):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUpstream):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Upstream provider unavailable"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
