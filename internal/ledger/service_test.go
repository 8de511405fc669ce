package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"promohub/internal/partner"
	"promohub/internal/promo"
)

type fixture struct {
	svc      *Service
	promos   *promo.Service
	partners *partner.Service
}

func newFixture(t *testing.T) *fixture {
	logger := zaptest.NewLogger(t)
	promos := promo.NewService(promo.NewLocalStorage(), logger)
	partners := partner.NewService(partner.NewLocalStorage(), logger)
	svc := NewService(NewLocalStorage(), promos, partners, logger)
	return &fixture{svc: svc, promos: promos, partners: partners}
}

func (f *fixture) activePromotion(t *testing.T) *promo.Promotion {
	p, err := f.promos.Create("Summer Drop", promo.TypePriceDrop, "2026-06-01", "2026-08-31", promo.StatusActive, "", []promo.Item{
		{SKUID: "sku-1", PromoPrice: decimal.NewFromInt(700), RebateAmount: decimal.NewFromInt(40)},
	})
	assert.NoError(t, err)
	return p
}

func (f *fixture) dealer(t *testing.T, rate int64) *partner.Partner {
	p, err := f.partners.Create("Skyline", partner.TypeDealer, "", "DE", decimal.NewFromInt(rate))
	assert.NoError(t, err)
	return p
}

func TestSubmit_CreatesOneEntryPerLine(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)

	entries, err := f.svc.Submit(promotion.ID, dealer.ID, []Line{
		{SKUID: "sku-1", Quantity: 10},
		{SKUID: "sku-2", Quantity: 0}, // zero lines are dropped, not rejected
		{SKUID: "sku-3", Quantity: 3},
	})
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	for _, e := range entries {
		assert.Equal(t, StatusUnpaid, e.PaymentStatus)
		assert.Equal(t, "15", e.ClaimPercentage.String())
		assert.False(t, e.SubmittedAt.IsZero())
	}
}

func TestSubmit_RejectsInactivePromotion(t *testing.T) {
	f := newFixture(t)
	dealer := f.dealer(t, 15)

	draft, err := f.promos.Create("Draft", promo.TypePromo, "", "", promo.StatusDraft, "", nil)
	assert.NoError(t, err)

	_, err = f.svc.Submit(draft.ID, dealer.ID, []Line{{SKUID: "sku-1", Quantity: 1}})
	assert.ErrorIs(t, err, ErrPromotionNotActive)
}

func TestSubmit_RejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)

	_, err := f.svc.Submit("missing", dealer.ID, []Line{{SKUID: "sku-1", Quantity: 1}})
	assert.ErrorIs(t, err, promo.ErrNotFound)

	_, err = f.svc.Submit(promotion.ID, "missing", []Line{{SKUID: "sku-1", Quantity: 1}})
	assert.ErrorIs(t, err, partner.ErrNotFound)
}

func TestSubmit_RejectsNegativeQuantity(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)

	_, err := f.svc.Submit(promotion.ID, dealer.ID, []Line{
		{SKUID: "sku-1", Quantity: 5},
		{SKUID: "sku-2", Quantity: -1},
	})
	assert.ErrorIs(t, err, ErrNegativeQuantity)

	// Nothing was written.
	entries, err := f.svc.List()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmit_RejectsAllZeroLines(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)

	_, err := f.svc.Submit(promotion.ID, dealer.ID, []Line{{SKUID: "sku-1", Quantity: 0}})
	assert.ErrorIs(t, err, ErrNoLines)

	_, err = f.svc.Submit(promotion.ID, dealer.ID, nil)
	assert.ErrorIs(t, err, ErrNoLines)
}

func TestSubmit_IsAdditiveOnResubmission(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)

	line := []Line{{SKUID: "sku-1", Quantity: 4}}
	_, err := f.svc.Submit(promotion.ID, dealer.ID, line)
	assert.NoError(t, err)
	_, err = f.svc.Submit(promotion.ID, dealer.ID, line)
	assert.NoError(t, err)

	entries, err := f.svc.List()
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSubmit_SnapshotSurvivesRateEdit(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)

	entries, err := f.svc.Submit(promotion.ID, dealer.ID, []Line{{SKUID: "sku-1", Quantity: 2}})
	assert.NoError(t, err)

	_, err = f.partners.Update(dealer.ID, dealer.Name, dealer.Type, dealer.Email, dealer.Country, decimal.NewFromInt(40))
	assert.NoError(t, err)

	stored, err := f.svc.Read(entries[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, "15", stored.ClaimPercentage.String())
}

func TestConfirmPayment(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)

	entries, err := f.svc.Submit(promotion.ID, dealer.ID, []Line{{SKUID: "sku-1", Quantity: 2}})
	assert.NoError(t, err)
	entryID := entries[0].ID

	paid, err := f.svc.ConfirmPayment(entryID, "TRF-12345678", "2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.PaymentStatus)
	assert.Equal(t, "TRF-12345678", paid.PaymentReference)
	assert.Equal(t, "2026-09-01", paid.PaymentDate)
}

func TestConfirmPayment_RequiresReferenceAndDate(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)
	entries, _ := f.svc.Submit(promotion.ID, dealer.ID, []Line{{SKUID: "sku-1", Quantity: 2}})

	_, err := f.svc.ConfirmPayment(entries[0].ID, "", "2026-09-01")
	assert.ErrorIs(t, err, ErrMissingPaymentRef)

	_, err = f.svc.ConfirmPayment(entries[0].ID, "TRF-1", "")
	assert.ErrorIs(t, err, ErrMissingPaymentRef)
}

func TestConfirmPayment_NoReverseTransition(t *testing.T) {
	f := newFixture(t)
	promotion := f.activePromotion(t)
	dealer := f.dealer(t, 15)
	entries, _ := f.svc.Submit(promotion.ID, dealer.ID, []Line{{SKUID: "sku-1", Quantity: 2}})

	_, err := f.svc.ConfirmPayment(entries[0].ID, "TRF-1", "2026-09-01")
	assert.NoError(t, err)

	_, err = f.svc.ConfirmPayment(entries[0].ID, "TRF-2", "2026-09-02")
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	// First confirmation stays intact.
	stored, err := f.svc.Read(entries[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, "TRF-1", stored.PaymentReference)
}

func TestConfirmPayment_UnknownEntry(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ConfirmPayment("missing", "TRF-1", "2026-09-01")
	assert.ErrorIs(t, err, ErrNotFound)
}
