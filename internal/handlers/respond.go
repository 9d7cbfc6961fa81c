package handlers

import (
	"errors"
	"net/http"

	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failure categories onto HTTP status codes.
// Authorization failures on resource lookups come back as 404 so callers
// cannot probe for resources they do not own.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCarUnavailable),
		errors.Is(err, services.ErrDatesUnavailable),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
