package rebate

import (
	"sort"

	"github.com/shopspring/decimal"

	"promohub/internal/catalog"
	"promohub/internal/ledger"
	"promohub/internal/partner"
	"promohub/internal/promo"
)

// Dataset is a full-collection snapshot the reporting functions work on.
// Slices are expected in store order (newest first); ties in ranked views
// keep that order.
type Dataset struct {
	Promotions []*promo.Promotion
	Partners   []*partner.Partner
	SKUs       []*catalog.SKU
	Entries    []*ledger.Entry
}

// Calculation is one ledger entry joined through its promotion, item,
// SKU, and partner, with the engine output attached.
type Calculation struct {
	EntryID          string               `json:"entry_id"`
	PromotionID      string               `json:"promotion_id"`
	PromotionName    string               `json:"promotion_name"`
	PartnerID        string               `json:"partner_id"`
	PartnerName      string               `json:"partner_name"`
	PartnerType      partner.Type         `json:"partner_type"`
	SKUCode          string               `json:"sku_code"`
	SKUName          string               `json:"sku_name"`
	OriginalPrice    decimal.Decimal      `json:"original_price"`
	PromoPrice       decimal.Decimal      `json:"promo_price"`
	QuantitySold     int                  `json:"quantity_sold"`
	ClaimPercentage  decimal.Decimal      `json:"claim_percentage"`
	RebatePerUnit    decimal.Decimal      `json:"rebate_per_unit"`
	TotalRebate      decimal.Decimal      `json:"total_rebate"`
	PaymentStatus    ledger.PaymentStatus `json:"payment_status"`
	PaymentReference string               `json:"payment_reference,omitempty"`
	PaymentDate      string               `json:"payment_date,omitempty"`
}

// Balance is one partner's settlement position.
type Balance struct {
	PartnerID       string          `json:"partner_id"`
	PartnerName     string          `json:"partner_name"`
	PartnerType     partner.Type    `json:"partner_type"`
	TotalClaimValue decimal.Decimal `json:"total_claim_value"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Outstanding     decimal.Decimal `json:"outstanding"`
}

// VolumeRank is one row of a top-N units-sold ranking.
type VolumeRank struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Units int    `json:"units"`
}

// Stats are the dashboard headline counters.
type Stats struct {
	Partners         int `json:"partners"`
	ActivePromotions int `json:"active_promotions"`
	SKUs             int `json:"skus"`
	TotalUnitsSold   int `json:"total_units_sold"`
}

// Statement is one partner's claim history with settlement totals.
type Statement struct {
	Rows         []Calculation   `json:"rows"`
	TotalClaimed decimal.Decimal `json:"total_claimed"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Pending      decimal.Decimal `json:"pending"`
}

// Calculations computes the rebate view: one row per ledger entry, joined
// best-effort. Entries whose promotion, partner, SKU, or promotion item no
// longer resolves are silently skipped, never an error. A non-empty
// promotionID restricts the view to that campaign.
func Calculations(ds Dataset, promotionID string) []Calculation {
	promos := make(map[string]*promo.Promotion, len(ds.Promotions))
	for _, p := range ds.Promotions {
		promos[p.ID] = p
	}
	partners := make(map[string]*partner.Partner, len(ds.Partners))
	for _, p := range ds.Partners {
		partners[p.ID] = p
	}
	skus := make(map[string]*catalog.SKU, len(ds.SKUs))
	for _, s := range ds.SKUs {
		skus[s.ID] = s
	}

	calcs := make([]Calculation, 0, len(ds.Entries))
	for _, e := range ds.Entries {
		if promotionID != "" && e.PromotionID != promotionID {
			continue
		}

		p, okPromo := promos[e.PromotionID]
		pt, okPartner := partners[e.PartnerID]
		sku, okSKU := skus[e.SKUID]
		if !okPromo || !okPartner || !okSKU {
			continue
		}
		item, ok := p.FindItem(sku.ID)
		if !ok {
			continue
		}

		c := Compute(sku.OriginalPrice, item.PromoPrice, e.ClaimPercentage, e.QuantitySold)
		calcs = append(calcs, Calculation{
			EntryID:          e.ID,
			PromotionID:      p.ID,
			PromotionName:    p.Name,
			PartnerID:        pt.ID,
			PartnerName:      pt.Name,
			PartnerType:      pt.Type,
			SKUCode:          sku.Code,
			SKUName:          sku.Name,
			OriginalPrice:    sku.OriginalPrice,
			PromoPrice:       item.PromoPrice,
			QuantitySold:     e.QuantitySold,
			ClaimPercentage:  e.ClaimPercentage,
			RebatePerUnit:    c.PerUnit,
			TotalRebate:      c.Total,
			PaymentStatus:    e.PaymentStatus,
			PaymentReference: e.PaymentReference,
			PaymentDate:      e.PaymentDate,
		})
	}
	return calcs
}

// Balances rolls the engine output up per partner: total claim value over
// all resolvable entries, total over PAID entries, and the outstanding
// difference. Partners with zero claim value are excluded; the result is
// ordered by outstanding descending, ties keeping partner store order.
func Balances(ds Dataset) []Balance {
	calcs := Calculations(ds, "")

	byPartner := make(map[string]*Balance, len(ds.Partners))
	for _, c := range calcs {
		b, ok := byPartner[c.PartnerID]
		if !ok {
			b = &Balance{
				PartnerID:       c.PartnerID,
				PartnerName:     c.PartnerName,
				PartnerType:     c.PartnerType,
				TotalClaimValue: decimal.Zero,
				TotalPaid:       decimal.Zero,
			}
			byPartner[c.PartnerID] = b
		}
		b.TotalClaimValue = b.TotalClaimValue.Add(c.TotalRebate)
		if c.PaymentStatus == ledger.StatusPaid {
			b.TotalPaid = b.TotalPaid.Add(c.TotalRebate)
		}
	}

	balances := make([]Balance, 0, len(byPartner))
	for _, p := range ds.Partners {
		b, ok := byPartner[p.ID]
		if !ok || !b.TotalClaimValue.IsPositive() {
			continue
		}
		b.Outstanding = b.TotalClaimValue.Sub(b.TotalPaid)
		balances = append(balances, *b)
	}

	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].Outstanding.GreaterThan(balances[j].Outstanding)
	})
	return balances
}

// TopPartnersByVolume ranks partners by total units sold, descending,
// truncated to n. Ties keep partner store order.
func TopPartnersByVolume(ds Dataset, n int) []VolumeRank {
	units := make(map[string]int, len(ds.Partners))
	for _, e := range ds.Entries {
		units[e.PartnerID] += e.QuantitySold
	}

	ranks := make([]VolumeRank, 0, len(ds.Partners))
	for _, p := range ds.Partners {
		ranks = append(ranks, VolumeRank{ID: p.ID, Name: p.Name, Units: units[p.ID]})
	}
	return truncateRanks(ranks, n)
}

// TopSKUsByVolume ranks SKUs by total units sold, descending, truncated
// to n. Ties keep SKU store order.
func TopSKUsByVolume(ds Dataset, n int) []VolumeRank {
	units := make(map[string]int, len(ds.SKUs))
	for _, e := range ds.Entries {
		units[e.SKUID] += e.QuantitySold
	}

	ranks := make([]VolumeRank, 0, len(ds.SKUs))
	for _, s := range ds.SKUs {
		ranks = append(ranks, VolumeRank{ID: s.ID, Name: s.Name, Code: s.Code, Units: units[s.ID]})
	}
	return truncateRanks(ranks, n)
}

func truncateRanks(ranks []VolumeRank, n int) []VolumeRank {
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Units > ranks[j].Units
	})
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// Summarize produces the dashboard headline counters.
func Summarize(ds Dataset) Stats {
	active := 0
	for _, p := range ds.Promotions {
		if p.Status == promo.StatusActive {
			active++
		}
	}
	totalUnits := 0
	for _, e := range ds.Entries {
		totalUnits += e.QuantitySold
	}
	return Stats{
		Partners:         len(ds.Partners),
		ActivePromotions: active,
		SKUs:             len(ds.SKUs),
		TotalUnitsSold:   totalUnits,
	}
}

// PartnerStatement builds one partner's claim history with totals
// claimed, paid, and pending.
func PartnerStatement(ds Dataset, partnerID string) Statement {
	st := Statement{
		Rows:         []Calculation{},
		TotalClaimed: decimal.Zero,
		TotalPaid:    decimal.Zero,
	}
	for _, c := range Calculations(ds, "") {
		if c.PartnerID != partnerID {
			continue
		}
		st.Rows = append(st.Rows, c)
		st.TotalClaimed = st.TotalClaimed.Add(c.TotalRebate)
		if c.PaymentStatus == ledger.StatusPaid {
			st.TotalPaid = st.TotalPaid.Add(c.TotalRebate)
		}
	}
	st.Pending = st.TotalClaimed.Sub(st.TotalPaid)
	return st
}
