package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU represents one product in the catalog. OriginalPrice is the list
// price a promotion discounts from; admins may change it, deleting a SKU
// does not cascade to historical ledger entries.
type SKU struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	CreatedAt     time.Time       `json:"created_at"`
}
