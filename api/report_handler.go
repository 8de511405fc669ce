package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promohub/internal/auth"
	"promohub/internal/rebate"
)

const topRankSize = 5

// reportHandler implements the dashboard and partner-statement endpoints.
type reportHandler struct {
	app    *App
	logger *zap.Logger
}

func newReportHandler(app *App, logger *zap.Logger) *reportHandler {
	return &reportHandler{
		app:    app,
		logger: logger,
	}
}

// handleDashboard handles GET /api/reports/dashboard.
func (h *reportHandler) handleDashboard(c *gin.Context) {
	ds, err := h.app.snapshot()
	if err != nil {
		h.logger.Error("failed to load reporting snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":        rebate.Summarize(ds),
		"balances":     rebate.Balances(ds),
		"top_partners": rebate.TopPartnersByVolume(ds, topRankSize),
		"top_skus":     rebate.TopSKUsByVolume(ds, topRankSize),
	})
}

// handlePartnerStatement handles GET /api/reports/partner/:id. Partner
// users may only read their own statement.
func (h *reportHandler) handlePartnerStatement(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	partnerID := c.Param("id")
	if ident.Role == auth.RolePartner && ident.PartnerID != partnerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "partners may only view their own statement"})
		return
	}

	ds, err := h.app.snapshot()
	if err != nil {
		h.logger.Error("failed to load reporting snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build statement"})
		return
	}

	c.JSON(http.StatusOK, rebate.PartnerStatement(ds, partnerID))
}
