package rebate

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
)

// ErrNothingToExport is returned when an export would contain no rows.
// No header-only file is ever produced.
var ErrNothingToExport = errors.New("nothing to export")

var exportHeader = []string{
	"Partner", "Type", "SKU", "Product", "Claim Qty",
	"Org Price", "Promo Price", "Margin Used",
	"Eff. Comp/Unit", "Total Value", "Status",
}

// ExportCSV renders the rebate view for one campaign (or all campaigns
// when promotionID is empty) as CSV. Computed money values are fixed to
// two decimals; fields containing commas, quotes, or newlines are
// quote-wrapped with internal quotes doubled.
func ExportCSV(ds Dataset, promotionID string) ([]byte, error) {
	calcs := Calculations(ds, promotionID)
	if len(calcs) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range calcs {
		row := []string{
			c.PartnerName,
			string(c.PartnerType),
			c.SKUCode,
			c.SKUName,
			strconv.Itoa(c.QuantitySold),
			c.OriginalPrice.String(),
			c.PromoPrice.String(),
			c.ClaimPercentage.String() + "%",
			c.RebatePerUnit.StringFixed(2),
			c.TotalRebate.StringFixed(2),
			string(c.PaymentStatus),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
