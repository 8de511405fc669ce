package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"promohub/internal/catalog"
)

// skuHandler implements the catalog endpoints.
type skuHandler struct {
	catalogService *catalog.Service
	logger         *zap.Logger
}

func newSKUHandler(catalogService *catalog.Service, logger *zap.Logger) *skuHandler {
	return &skuHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

type skuRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	OriginalPrice decimal.Decimal `json:"original_price"`
}

func (h *skuHandler) handleList(c *gin.Context) {
	skus, err := h.catalogService.List()
	if err != nil {
		h.logger.Error("failed to list skus", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list skus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": skus})
}

func (h *skuHandler) handleCreate(c *gin.Context) {
	var req skuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sku, err := h.catalogService.Create(req.Code, req.Name, req.Category, req.OriginalPrice)
	if err != nil {
		if errors.Is(err, catalog.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create sku", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sku"})
		return
	}
	c.JSON(http.StatusCreated, sku)
}

func (h *skuHandler) handleUpdate(c *gin.Context) {
	var req skuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sku, err := h.catalogService.Update(c.Param("id"), req.Code, req.Name, req.Category, req.OriginalPrice)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "sku not found"})
		case errors.Is(err, catalog.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update sku", zap.String("sku_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sku"})
		}
		return
	}
	c.JSON(http.StatusOK, sku)
}

func (h *skuHandler) handleDelete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sku not found"})
			return
		}
		h.logger.Error("failed to delete sku", zap.String("sku_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sku"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *skuHandler) handleDeleteBatch(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids are required"})
		return
	}

	removed := h.catalogService.DeleteBatch(req.IDs)
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// handleImportCSV handles POST /api/skus/import with a raw CSV body.
func (h *skuHandler) handleImportCSV(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty file"})
		return
	}

	skus, err := h.catalogService.ImportCSV(string(body))
	if err != nil {
		if errors.Is(err, catalog.ErrNoValidRows) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no valid skus found in file"})
			return
		}
		h.logger.Error("failed to import skus", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import skus"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": len(skus), "results": skus})
}
