package promo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a campaign.
type Type string

const (
	TypePromo     Type = "PROMO"
	TypePriceDrop Type = "PRICE_DROP"
)

// Status is the campaign lifecycle state. Only ACTIVE campaigns accept
// claim submissions.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

// Item binds one SKU to its promotional price within a campaign.
// RebateAmount is a flat planning figure authored at campaign creation; it
// is informational only and never used when settling claims, which always
// go through the computation engine.
type Item struct {
	SKUID        string          `json:"sku_id"`
	PromoPrice   decimal.Decimal `json:"promo_price"`
	RebateAmount decimal.Decimal `json:"rebate_amount"`
}

// Promotion is a time-boxed campaign. Item SKU references are not
// enforced; consumers skip items pointing at deleted SKUs.
type Promotion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        Type      `json:"type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      Status    `json:"status"`
	Description string    `json:"description"`
	Items       []Item    `json:"items"`
	CreatedAt   time.Time `json:"created_at"`
}

// FindItem returns the campaign line for the given SKU, or false when the
// SKU is not part of the campaign.
func (p *Promotion) FindItem(skuID string) (Item, bool) {
	for _, item := range p.Items {
		if item.SKUID == skuID {
			return item, true
		}
	}
	return Item{}, false
}
