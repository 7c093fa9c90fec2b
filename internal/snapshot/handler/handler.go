package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menu-bridge/internal/snapshot"
	"menu-bridge/pkg/i18n"
	"menu-bridge/pkg/logger"
	"menu-bridge/pkg/middleware"
)

type SnapshotHandler struct {
	uc     snapshot.UseCase
	logger logger.ZapLogger
}

func NewSnapshotHandler(uc snapshot.UseCase, log logger.ZapLogger) *SnapshotHandler {
	return &SnapshotHandler{
		uc:     uc,
		logger: log,
	}
}

// GetMenu handles GET /api/v1/menu.
func (h *SnapshotHandler) GetMenu(c *gin.Context) {
	lang := middleware.Lang(c)

	doc, err := h.uc.GetMenu(c.Request.Context(), lang)
	if err != nil {
		h.logger.Error("failed to get menu snapshot", zap.String("lang", lang), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": doc})
}

// Reload handles POST /api/v1/cache/reload.
func (h *SnapshotHandler) Reload(c *gin.Context) {
	lang := middleware.Lang(c)

	result, err := h.uc.Reload(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to reload menu snapshots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  i18n.T(lang, "cache_reloaded", nil),
		"metadata": result,
	})
}

// Status handles GET /api/v1/cache/status.
func (h *SnapshotHandler) Status(c *gin.Context) {
	lang := middleware.Lang(c)

	statuses, err := h.uc.Status(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to read snapshot status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"cache":  statuses,
	})
}

// Clear handles DELETE /api/v1/cache/clear.
func (h *SnapshotHandler) Clear(c *gin.Context) {
	lang := middleware.Lang(c)

	removed, err := h.uc.Clear(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to clear menu snapshots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": i18n.T(lang, "cache_cleared", nil),
		"removed": removed,
	})
}
