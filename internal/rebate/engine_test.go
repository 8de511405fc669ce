package rebate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCompute_DealerScenario(t *testing.T) {
	// $759 list, $700 promo, 15% retained margin:
	// drop 59, partner share 8.85, per unit 50.15.
	c := Compute(d("759"), d("700"), d("15"), 10)
	assert.Equal(t, "50.15", c.PerUnit.StringFixed(2))
	assert.Equal(t, "501.50", c.Total.StringFixed(2))
}

func TestCompute_ZeroRateManufacturerBearsFullDrop(t *testing.T) {
	c := Compute(d("759"), d("700"), d("0"), 3)
	assert.Equal(t, "59.00", c.PerUnit.StringFixed(2))
	assert.Equal(t, "177.00", c.Total.StringFixed(2))
}

func TestCompute_FullRatePartnerBearsFullDrop(t *testing.T) {
	c := Compute(d("759"), d("700"), d("100"), 10)
	assert.True(t, c.PerUnit.IsZero())
	assert.True(t, c.Total.IsZero())
}

func TestCompute_NegativeDropClampsToZero(t *testing.T) {
	for _, rate := range []string{"0", "15", "100"} {
		c := Compute(d("759"), d("800"), d(rate), 5)
		assert.True(t, c.PerUnit.IsZero(), "rate %s", rate)
		assert.True(t, c.Total.IsZero(), "rate %s", rate)
	}
}

func TestCompute_OverFullRateClampsToZero(t *testing.T) {
	c := Compute(d("759"), d("700"), d("120"), 5)
	assert.True(t, c.PerUnit.IsZero())
}

func TestCompute_ZeroQuantity(t *testing.T) {
	c := Compute(d("759"), d("700"), d("15"), 0)
	assert.Equal(t, "50.15", c.PerUnit.StringFixed(2))
	assert.True(t, c.Total.IsZero())
}

func TestCompute_PerUnitBoundedByDrop(t *testing.T) {
	prices := []string{"0", "10", "99.99", "759", "10000"}
	rates := []string{"0", "1", "15", "50", "99.5", "100"}

	for _, orig := range prices {
		for _, promoPrice := range prices {
			if d(promoPrice).GreaterThan(d(orig)) {
				continue
			}
			drop := d(orig).Sub(d(promoPrice))
			for _, rate := range rates {
				c := Compute(d(orig), d(promoPrice), d(rate), 1)
				assert.False(t, c.PerUnit.IsNegative(),
					"orig=%s promo=%s rate=%s", orig, promoPrice, rate)
				assert.True(t, c.PerUnit.LessThanOrEqual(drop),
					"orig=%s promo=%s rate=%s", orig, promoPrice, rate)
			}
		}
	}
}

func TestCompute_TotalIsPerUnitTimesQuantity(t *testing.T) {
	for _, qty := range []int{0, 1, 7, 1000} {
		c := Compute(d("759"), d("700"), d("15"), qty)
		expected := c.PerUnit.Mul(decimal.NewFromInt(int64(qty)))
		assert.True(t, c.Total.Equal(expected), "qty %d", qty)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a := Compute(d("759"), d("700"), d("15"), 10)
	b := Compute(d("759"), d("700"), d("15"), 10)
	assert.True(t, a.PerUnit.Equal(b.PerUnit))
	assert.True(t, a.Total.Equal(b.Total))
}

func TestCompute_NoPrematureRounding(t *testing.T) {
	// drop 0.10 at 33% -> per unit 0.067 exactly, kept unrounded.
	c := Compute(d("1.10"), d("1.00"), d("33"), 1)
	assert.Equal(t, "0.067", c.PerUnit.String())
}
