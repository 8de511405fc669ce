package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"promohub/internal/partner"
	"promohub/internal/promo"
)

// ErrPromotionNotActive is returned when submitting against a campaign
// that is not in ACTIVE status.
var ErrPromotionNotActive = errors.New("promotion is not active")

// ErrNegativeQuantity is returned when any submitted line carries a
// negative quantity. The computation engine does not re-check quantity
// sign, so this boundary is the only guard against negative totals.
var ErrNegativeQuantity = errors.New("quantity sold cannot be negative")

// ErrNoLines is returned when no submitted line has a positive quantity.
var ErrNoLines = errors.New("at least one line with quantity sold is required")

// ErrAlreadyPaid is returned when confirming payment on a PAID entry.
var ErrAlreadyPaid = errors.New("ledger entry is already paid")

// ErrMissingPaymentRef is returned when a payment confirmation has no
// reference or no date.
var ErrMissingPaymentRef = errors.New("payment reference and date are required")

// PromotionSource resolves promotions for submission validation.
type PromotionSource interface {
	Read(id string) (*promo.Promotion, error)
}

// PartnerSource resolves partners for the rate snapshot.
type PartnerSource interface {
	Read(id string) (*partner.Partner, error)
}

// Service provides claim submission and payment confirmation on top of a
// Storage backend.
type Service struct {
	storage    Storage
	promotions PromotionSource
	partners   PartnerSource
	logger     *zap.Logger
}

// NewService creates a new ledger Service.
func NewService(storage Storage, promotions PromotionSource, partners PartnerSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage:    storage,
		promotions: promotions,
		partners:   partners,
		logger:     logger,
	}
}

// Submit records a claim against an active promotion. One entry is created
// per line with a positive quantity, each snapshotting the partner's
// current discount rate. Resubmitting the same promotion/partner/SKU
// combination is additive: partners sell in batches, so duplicates are
// declared behavior, not an error.
func (s *Service) Submit(promotionID, partnerID string, lines []Line) ([]*Entry, error) {
	p, err := s.promotions.Read(promotionID)
	if err != nil {
		return nil, err
	}
	if p.Status != promo.StatusActive {
		return nil, ErrPromotionNotActive
	}

	pt, err := s.partners.Read(partnerID)
	if err != nil {
		return nil, err
	}

	var pending []Line
	for _, line := range lines {
		if line.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		if line.Quantity > 0 {
			pending = append(pending, line)
		}
	}
	if len(pending) == 0 {
		return nil, ErrNoLines
	}

	now := time.Now()
	entries := make([]*Entry, 0, len(pending))
	for _, line := range pending {
		e := &Entry{
			ID:              uuid.NewString(),
			PromotionID:     promotionID,
			PartnerID:       partnerID,
			SKUID:           line.SKUID,
			QuantitySold:    line.Quantity,
			ClaimPercentage: pt.DiscountRate,
			SubmittedAt:     now,
			PaymentStatus:   StatusUnpaid,
		}
		if err := s.storage.Set(e); err != nil {
			s.logger.Error("failed to save ledger entry", zap.String("entry_id", e.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to save ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	s.logger.Info("claim submitted",
		zap.String("promotion_id", promotionID),
		zap.String("partner_id", partnerID),
		zap.Int("entries", len(entries)),
		zap.String("rate_snapshot", pt.DiscountRate.String()),
	)
	return entries, nil
}

// ConfirmPayment transitions one entry from UNPAID to PAID. The reference
// and date are required; the date is not checked against the submission
// date. There is no PAID to UNPAID path.
func (s *Service) ConfirmPayment(entryID, reference, date string) (*Entry, error) {
	if reference == "" || date == "" {
		return nil, ErrMissingPaymentRef
	}

	e, err := s.storage.Read(entryID)
	if err != nil {
		return nil, err
	}
	if e.PaymentStatus == StatusPaid {
		return nil, ErrAlreadyPaid
	}

	e.PaymentStatus = StatusPaid
	e.PaymentReference = reference
	e.PaymentDate = date

	if err := s.storage.Set(e); err != nil {
		s.logger.Error("failed to update ledger entry", zap.String("entry_id", entryID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("payment confirmed",
		zap.String("entry_id", entryID),
		zap.String("payment_reference", reference),
	)
	return e, nil
}

// List returns all ledger entries, newest first.
func (s *Service) List() ([]*Entry, error) {
	return s.storage.GetAll()
}

// Read returns one ledger entry by ID.
func (s *Service) Read(id string) (*Entry, error) {
	return s.storage.Read(id)
}
