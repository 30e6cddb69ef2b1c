package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/repository"
	"fleetflow/internal/service"
)

func errorResponse(message string) gin.H {
	return gin.H{"message": message}
}

// handleError maps domain failures onto HTTP statuses; the message travels to
// the caller verbatim. Anything unclassified is a 500.
func (h *Handler) handleError(c *gin.Context, err error) {
	var domainErr *service.Error
	if errors.As(err, &domainErr) {
		c.JSON(statusFor(domainErr.Kind), errorResponse(domainErr.Message))
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse("Not found."))
		return
	}
	h.log.Error().Err(err).Msg("handler error")
	c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
