package handlers

import (
	"errors"
	"net/http"

	apperrors "frc-scout-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps the error taxonomy onto HTTP statuses: validation input
// problems are 400, missing entities 404, everything else is a storage or
// internal failure surfaced as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrNotEnoughTeams),
		errors.Is(err, apperrors.ErrTooManyTeams),
		errors.Is(err, apperrors.ErrPhotoTooLarge):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// sessionIDParam parses the :sessionID path parameter. Writes a 400 response
// and returns false when the value is not a UUID.
func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}
