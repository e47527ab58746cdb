package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// ErrorResponse is the generic error envelope for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates service-layer sentinel errors into HTTP
// statuses. internalMsg is returned for anything not in the taxonomy so that
// internal details do not leak to clients.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidID):
		logger.Warn("Malformed identifier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalMsg})
	}
}

// bindListParams binds the shared limit/offset query params, falling back to
// the DTO defaults on malformed input.
func bindListParams(c *gin.Context) dto.ListParams {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		params = dto.ListParams{Limit: 20, Offset: 0}
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return params
}
