package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menu-bridge/internal/category"
	"menu-bridge/pkg/i18n"
	"menu-bridge/pkg/logger"
	"menu-bridge/pkg/middleware"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

// ListCategories handles GET /api/v1/categories.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.Lang(c)

	categories, err := h.uc.ListCategories(c.Request.Context(), lang)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// MenuSummary handles GET /api/v1/menu/summary.
func (h *CategoryHandler) MenuSummary(c *gin.Context) {
	lang := middleware.Lang(c)

	summary, err := h.uc.MenuSummary(c.Request.Context(), lang)
	if err != nil {
		h.logger.Error("failed to build menu summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"categories":       summary.Categories,
		"total_categories": summary.TotalCategories,
		"total_products":   summary.TotalProducts,
	})
}
