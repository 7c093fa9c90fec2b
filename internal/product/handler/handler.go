package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menu-bridge/internal/pricing"
	"menu-bridge/internal/product"
	"menu-bridge/internal/product/dto"
	"menu-bridge/pkg/i18n"
	"menu-bridge/pkg/logger"
	"menu-bridge/pkg/middleware"
	"menu-bridge/pkg/validator"
)

type ProductHandler struct {
	uc     product.UseCase
	val    *validator.Validator
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, val *validator.Validator, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		val:    val,
		logger: log,
	}
}

// ListProducts handles GET /api/v1/products.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	lang := middleware.Lang(c)

	categoryID, _ := strconv.ParseInt(c.Query("category_id"), 10, 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	active := true
	filters := &dto.ProductFilters{
		Lang:        lang,
		CategoryID:  categoryID,
		IsActive:    &active,
		SearchQuery: c.Query("q"),
		SortBy:      c.DefaultQuery("sort_by", "name"),
		SortOrder:   c.DefaultQuery("sort_order", "asc"),
		Page:        page,
		PageSize:    pageSize,
	}

	products, total, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

// GetProduct handles GET /api/v1/products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := middleware.Lang(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "invalid_request", nil)})
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id, lang)
	if err != nil {
		h.logger.Error("failed to get product", zap.Int64("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, "product_not_found", map[string]interface{}{"ID": id})})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}

// Quote handles POST /api/v1/products/:id/quote.
func (h *ProductHandler) Quote(c *gin.Context) {
	lang := middleware.Lang(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "invalid_request", nil)})
		return
	}

	var input dto.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "invalid_request", nil)})
		return
	}
	if err := h.val.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "invalid_request", nil)})
		return
	}
	input.ProductID = id
	input.Lang = lang

	result, err := h.uc.Quote(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidReference) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": i18n.T(lang, "invalid_selection", nil)})
			return
		}
		h.logger.Error("failed to quote product", zap.Int64("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "internal_error", nil)})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, "product_not_found", map[string]interface{}{"ID": id})})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": result})
}
