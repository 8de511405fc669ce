package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promohub/internal/auth"
	"promohub/internal/ledger"
	"promohub/internal/partner"
	"promohub/internal/promo"
	"promohub/internal/rebate"
)

// claimHandler implements claim submission, the rebate view, payment
// confirmation, and the CSV export.
type claimHandler struct {
	app    *App
	logger *zap.Logger
}

func newClaimHandler(app *App, logger *zap.Logger) *claimHandler {
	return &claimHandler{
		app:    app,
		logger: logger,
	}
}

// handleSubmit handles POST /api/claims. Admins may submit on any
// partner's behalf; partner users only for their own profile.
func (h *claimHandler) handleSubmit(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req struct {
		PromotionID string        `json:"promotion_id"`
		PartnerID   string        `json:"partner_id"`
		Lines       []ledger.Line `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if ident.Role == auth.RolePartner {
		if req.PartnerID == "" {
			req.PartnerID = ident.PartnerID
		}
		if req.PartnerID != ident.PartnerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "partners may only submit their own claims"})
			return
		}
	}

	entries, err := h.app.Ledger.Submit(req.PromotionID, req.PartnerID, req.Lines)
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
		case errors.Is(err, partner.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
		case errors.Is(err, ledger.ErrPromotionNotActive),
			errors.Is(err, ledger.ErrNegativeQuantity),
			errors.Is(err, ledger.ErrNoLines):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to submit claim", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit claim"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"results": entries})
}

// handleList handles GET /api/claims, the computed rebate view. An
// optional promotion_id query narrows it to one campaign.
func (h *claimHandler) handleList(c *gin.Context) {
	ds, err := h.app.snapshot()
	if err != nil {
		h.logger.Error("failed to load reporting snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute rebates"})
		return
	}

	calcs := rebate.Calculations(ds, c.Query("promotion_id"))
	c.JSON(http.StatusOK, gin.H{"results": calcs})
}

// handleConfirmPayment handles PATCH /api/claims/:id/payment.
func (h *claimHandler) handleConfirmPayment(c *gin.Context) {
	var req struct {
		PaymentReference string `json:"payment_reference"`
		PaymentDate      string `json:"payment_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	entry, err := h.app.Ledger.ConfirmPayment(c.Param("id"), req.PaymentReference, req.PaymentDate)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "ledger entry not found"})
		case errors.Is(err, ledger.ErrMissingPaymentRef):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ledger.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to confirm payment", zap.String("entry_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm payment"})
		}
		return
	}
	c.JSON(http.StatusOK, entry)
}

// handleExportCSV handles GET /api/claims/export. An export with no rows
// is refused rather than producing a header-only file.
func (h *claimHandler) handleExportCSV(c *gin.Context) {
	ds, err := h.app.snapshot()
	if err != nil {
		h.logger.Error("failed to load reporting snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export rebates"})
		return
	}

	promotionID := c.Query("promotion_id")
	out, err := rebate.ExportCSV(ds, promotionID)
	if err != nil {
		if errors.Is(err, rebate.ErrNothingToExport) {
			c.JSON(http.StatusNotFound, gin.H{"error": "nothing to export"})
			return
		}
		h.logger.Error("failed to export rebates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export rebates"})
		return
	}

	name := "rebate_report"
	if promotionID != "" {
		if p, err := h.app.Promos.Read(promotionID); err == nil {
			name = "rebate_report_" + strings.ReplaceAll(p.Name, " ", "_")
		}
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}
