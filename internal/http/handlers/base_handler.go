// README: Shared handler utilities (error responses, module error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sawari/internal/modules/admin"
	"sawari/internal/modules/booking"
	"sawari/internal/modules/query"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrInvalidState):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrValidation), errors.Is(err, booking.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrPersist):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, query.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, query.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, admin.ErrNotConfigured):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
