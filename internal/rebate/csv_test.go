package rebate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"promohub/internal/ledger"
	"promohub/internal/promo"
)

func TestExportCSV(t *testing.T) {
	out, err := ExportCSV(testDataset(), "promo-1")
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t,
		"Partner,Type,SKU,Product,Claim Qty,Org Price,Promo Price,Margin Used,Eff. Comp/Unit,Total Value,Status",
		lines[0])
	assert.Equal(t, "Alpha,DEALER,MAV-3,Mavic 3 Pro,10,759,700,15%,50.15,501.50,UNPAID", lines[1])
	assert.Equal(t, "Beta,DEALER,MAV-3,Mavic 3 Pro,3,759,700,0%,59.00,177.00,PAID", lines[2])
}

func TestExportCSV_AllCampaigns(t *testing.T) {
	ds := testDataset()
	ds.Promotions = append(ds.Promotions,
		campaign("promo-2", "Other", promo.Item{SKUID: "sku-1", PromoPrice: d("650")}))
	ds.Entries = append(ds.Entries,
		entry("e-3", "promo-2", "partner-a", "sku-1", 1, "15", ledger.StatusUnpaid))

	out, err := ExportCSV(ds, "")
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	assert.Len(t, lines, 4)
}

func TestExportCSV_EscapesFields(t *testing.T) {
	ds := testDataset()
	ds.Partners[0].Name = `Alpha, "The First"`

	out, err := ExportCSV(ds, "promo-1")
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"Alpha, ""The First"""`)
}

func TestExportCSV_RefusesEmptyExport(t *testing.T) {
	ds := testDataset()
	ds.Entries = nil

	out, err := ExportCSV(ds, "")
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Nil(t, out, "no header-only file may be produced")

	// A campaign filter with no matching claims is refused the same way.
	_, err = ExportCSV(testDataset(), "promo-without-claims")
	assert.ErrorIs(t, err, ErrNothingToExport)
}
