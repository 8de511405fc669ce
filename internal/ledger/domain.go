package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks settlement of one ledger entry. The only
// transition is UNPAID to PAID; no reversal path exists.
type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "UNPAID"
	StatusPaid   PaymentStatus = "PAID"
)

// Entry is one partner's reported sale quantity against one SKU within one
// promotion. ClaimPercentage is the partner's margin rate snapshotted at
// submission time and is immutable afterwards; later rate edits in the
// registry do not reach back into the ledger. Only the payment fields
// change post-creation.
type Entry struct {
	ID               string          `json:"id"`
	PromotionID      string          `json:"promotion_id"`
	PartnerID        string          `json:"partner_id"`
	SKUID            string          `json:"sku_id"`
	QuantitySold     int             `json:"quantity_sold"`
	ClaimPercentage  decimal.Decimal `json:"claim_percentage"`
	SubmittedAt      time.Time       `json:"submitted_at"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	PaymentDate      string          `json:"payment_date,omitempty"`
}

// Line is one SKU quantity within a claim submission.
type Line struct {
	SKUID    string `json:"sku_id"`
	Quantity int    `json:"quantity"`
}
