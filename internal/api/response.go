package api

import (
	"errors"
	"net/http"

	"github.com/example/citizenprep/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Error: msg})
}

// failWith maps service errors to HTTP statuses; anything unrecognised is a 500 with fallback as message
func (h *Handler) failWith(c *gin.Context, err error, fallback string) {
	var inputErr *service.InputError

	switch {
	case errors.As(err, &inputErr):
		fail(c, http.StatusBadRequest, inputErr.Msg)
	case errors.Is(err, service.ErrUserExists):
		fail(c, http.StatusConflict, "User already exists")
	case errors.Is(err, service.ErrUserNotFound):
		fail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrForbidden):
		fail(c, http.StatusForbidden, "This endpoint is only available in production")
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, "Not found")
	default:
		h.log.Error(fallback,
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		fail(c, http.StatusInternalServerError, fallback)
	}
}
