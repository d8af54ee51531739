package view

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"vibe_tracker/internal/domain/entity"
)

// USDAccessors lists the USD price fields in lookup order.
var USDAccessors = []Accessor{
	Field("usdPrice"),
	Field("priceUsd"),
	Field("price_usd"),
	Field("priceUSD"),
	Nested("metadata", "usdPrice"),
}

// PriceUSD returns the first USD field that parses as a finite number.
func PriceUSD(item entity.RawItem) (float64, bool) {
	for _, get := range USDAccessors {
		v, ok := get(item)
		if !ok {
			continue
		}
		if f, ok := ToFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

// USDAmount is PriceUSD for aggregation: 0 when no price is known.
func USDAmount(item entity.RawItem) float64 {
	f, _ := PriceUSD(item)
	return f
}

// USDDisplay is PriceUSD for display: "" when no price is known.
func USDDisplay(item entity.RawItem) string {
	f, ok := PriceUSD(item)
	if !ok {
		return ""
	}
	return FormatUSD(f)
}

// FormatUSD prints whole dollars from $100 up and cents below. Halves round away from
// zero on the exact binary value, so 100.5 is "$101" while 1.005 (stored just below
// 1.005) is "$1.00".
func FormatUSD(v float64) string {
	places := int32(2)
	if v >= 100 {
		places = 0
	}
	return "$" + exactDecimal(v).StringFixed(places)
}

// exactDecimal converts v without the shortest-representation rounding of
// decimal.NewFromFloat: v = m * 2^e = m * 5^-e * 10^e for e < 0.
func exactDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	frac, exp := math.Frexp(v)
	m := big.NewInt(int64(frac * (1 << 53)))
	e := exp - 53
	if e >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(e)), 0)
	}
	pow5 := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil)
	return decimal.NewFromBigInt(m.Mul(m, pow5), int32(e))
}
