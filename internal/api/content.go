package api

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/example/citizenprep/internal/content"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) listPosts(c *gin.Context) {
	ok(c, content.Posts())
}

func (h *Handler) getPost(c *gin.Context) {
	post, found := content.PostBySlug(c.Param("slug"))
	if !found {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	ok(c, post)
}

func (h *Handler) sitemap(c *gin.Context) {
	var buf bytes.Buffer
	if err := content.WriteSitemap(&buf, h.cfg.BaseURL, h.now()); err != nil {
		h.log.Error("failed to render sitemap", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to render sitemap")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

func (h *Handler) health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn("health check failed", zap.Error(err))
			fail(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
	}
	ok(c, gin.H{"status": "ok"})
}
