package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promohub/internal/promo"
)

// promotionHandler implements the campaign endpoints.
type promotionHandler struct {
	promoService *promo.Service
	logger       *zap.Logger
}

func newPromotionHandler(promoService *promo.Service, logger *zap.Logger) *promotionHandler {
	return &promotionHandler{
		promoService: promoService,
		logger:       logger,
	}
}

type promotionRequest struct {
	Name        string       `json:"name"`
	Type        promo.Type   `json:"type"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Status      promo.Status `json:"status"`
	Description string       `json:"description"`
	Items       []promo.Item `json:"items"`
}

func (h *promotionHandler) handleList(c *gin.Context) {
	promotions, err := h.promoService.List()
	if err != nil {
		h.logger.Error("failed to list promotions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list promotions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": promotions})
}

func (h *promotionHandler) handleCreate(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.promoService.Create(req.Name, req.Type, req.StartDate, req.EndDate, req.Status, req.Description, req.Items)
	if err != nil {
		if isPromotionValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create promotion", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create promotion"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *promotionHandler) handleUpdate(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.promoService.Update(c.Param("id"), req.Name, req.Type, req.StartDate, req.EndDate, req.Status, req.Description, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
		case isPromotionValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update promotion", zap.String("promotion_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update promotion"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *promotionHandler) handleDelete(c *gin.Context) {
	if err := h.promoService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, promo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
			return
		}
		h.logger.Error("failed to delete promotion", zap.String("promotion_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete promotion"})
		return
	}
	c.Status(http.StatusNoContent)
}

func isPromotionValidationError(err error) bool {
	return errors.Is(err, promo.ErrMissingName) ||
		errors.Is(err, promo.ErrInvalidType) ||
		errors.Is(err, promo.ErrInvalidStatus)
}
