// Package money formats monetary values for display.
//
// Conversions work on float64 and are never rounded; rounding happens here,
// at display time only.
package money

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// AmountDecimals is the number of decimals shown for amounts.
	AmountDecimals = 2
	// RateDecimals is the number of decimals shown for exchange rates.
	RateDecimals = 4
)

// FormatAmount renders v with thousands separators and two decimals,
// e.g. 1234567.891 → "1,234,567.89".
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatNonFinite(v)
	}
	return groupThousands(fixed(v, AmountDecimals))
}

// FormatRate renders an exchange rate with four decimals and no grouping.
func FormatRate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatNonFinite(v)
	}
	return fixed(v, RateDecimals)
}

// fixed rounds the exact binary value of v to places decimals, ties to
// even, so 1.005 (stored as 1.00499...) gives "1.00" and 0.125 gives "0.12".
// The sign of a negative value that rounds to zero is kept.
func fixed(v float64, places int32) string {
	s := exactDecimal(v).StringFixedBank(places)
	if math.Signbit(v) && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// exactDecimal returns the exact value of a finite float64.
// decimal.NewFromFloat would use the shortest round-trip string instead.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := int64(frac * (1 << 53))
	shift := exp - 53
	if mant == 0 {
		return decimal.Zero
	}

	for shift < 0 && mant%2 == 0 {
		mant /= 2
		shift++
	}

	coef := big.NewInt(mant)
	if shift >= 0 {
		return decimal.NewFromBigInt(coef.Lsh(coef, uint(shift)), 0)
	}
	// m * 2^-k == m * 5^k * 10^-k
	k := int64(-shift)
	pow5 := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(coef.Mul(coef, pow5), int32(-k))
}

// groupThousands inserts commas into the integer part of a plain decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 1)
	b.WriteString(sign)

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

func formatNonFinite(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case v > 0:
		return "inf"
	default:
		return "-inf"
	}
}
