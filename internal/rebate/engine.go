// Package rebate holds the compensation computation engine and the
// reporting views built on top of it. Everything here is a pure function
// of collection snapshots; nothing reads or writes storage.
package rebate

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Computation is the engine output for one ledger entry.
type Computation struct {
	PerUnit decimal.Decimal
	Total   decimal.Decimal
}

// Compute derives the manufacturer-side compensation for one claim:
//
//	priceDrop    = originalPrice - promoPrice
//	partnerShare = priceDrop * ratePercent/100
//	perUnit      = max(0, priceDrop - partnerShare)
//	total        = perUnit * quantity
//
// The per-unit value is clamped at zero, so a promo price above the list
// price or a rate over 100 never produces a negative payable. No rounding
// happens here; callers round at presentation or export time. Quantity
// sign is not re-validated: the submission boundary rejects negatives
// before anything reaches the engine. This is the single authoritative
// formula; every view and export must go through it, and the flat
// rebate amount stored on promotion items is never a substitute.
func Compute(originalPrice, promoPrice, ratePercent decimal.Decimal, quantity int) Computation {
	priceDrop := originalPrice.Sub(promoPrice)
	partnerShare := priceDrop.Mul(ratePercent).Div(hundred)

	perUnit := priceDrop.Sub(partnerShare)
	if perUnit.IsNegative() {
		perUnit = decimal.Zero
	}

	return Computation{
		PerUnit: perUnit,
		Total:   perUnit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
