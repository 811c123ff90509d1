package api

import (
	"errors"
	"net/http"

	"github.com/example/citizenprep/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) setupDatabase(c *gin.Context) {
	report, err := h.setup.Setup(c.Request.Context(), c.Query("secret"))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) || errors.Is(err, service.ErrUnauthorized) {
			h.failWith(c, err, "")
			return
		}
		h.log.Error("database setup failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, envelope{
			Success: false,
			Error:   "Failed to setup database",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Database setup completed successfully",
		Data:    report,
	})
}

func (h *Handler) debugDatabase(c *gin.Context) {
	report, err := h.setup.Debug(c.Request.Context(), c.Query("secret"))
	if err != nil {
		h.failWith(c, err, "Debug failed")
		return
	}
	ok(c, report)
}
