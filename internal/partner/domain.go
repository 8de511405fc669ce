package partner

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type distinguishes the two partner profiles. The distinction is purely
// conventional; the rebate computation treats both the same.
type Type string

const (
	TypeDealer Type = "DEALER"
	TypeTrader Type = "TRADER"
)

// Partner is a dealer or trader profile. DiscountRate is the partner's
// retained margin: the percentage of a promotion's price drop the partner
// absorbs itself, with the manufacturer compensating the remainder.
// Editing the rate never touches historical ledger entries; each entry
// snapshots the rate in effect when the claim was submitted.
type Partner struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         Type            `json:"type"`
	Email        string          `json:"email"`
	Country      string          `json:"country"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	CreatedAt    time.Time       `json:"created_at"`
}
