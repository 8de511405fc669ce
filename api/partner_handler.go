package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"promohub/internal/partner"
)

// partnerHandler implements the partner registry endpoints.
type partnerHandler struct {
	partnerService *partner.Service
	logger         *zap.Logger
}

func newPartnerHandler(partnerService *partner.Service, logger *zap.Logger) *partnerHandler {
	return &partnerHandler{
		partnerService: partnerService,
		logger:         logger,
	}
}

type partnerRequest struct {
	Name         string          `json:"name"`
	Type         partner.Type    `json:"type"`
	Email        string          `json:"email"`
	Country      string          `json:"country"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
}

func (h *partnerHandler) handleList(c *gin.Context) {
	partners, err := h.partnerService.List()
	if err != nil {
		h.logger.Error("failed to list partners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": partners})
}

func (h *partnerHandler) handleCreate(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.partnerService.Create(req.Name, req.Type, req.Email, req.Country, req.DiscountRate)
	if err != nil {
		if isPartnerValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create partner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create partner"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *partnerHandler) handleUpdate(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.partnerService.Update(c.Param("id"), req.Name, req.Type, req.Email, req.Country, req.DiscountRate)
	if err != nil {
		switch {
		case errors.Is(err, partner.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
		case isPartnerValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update partner", zap.String("partner_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update partner"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *partnerHandler) handleDelete(c *gin.Context) {
	if err := h.partnerService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, partner.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		h.logger.Error("failed to delete partner", zap.String("partner_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete partner"})
		return
	}
	c.Status(http.StatusNoContent)
}

func isPartnerValidationError(err error) bool {
	return errors.Is(err, partner.ErrMissingName) ||
		errors.Is(err, partner.ErrInvalidType) ||
		errors.Is(err, partner.ErrInvalidRate)
}
