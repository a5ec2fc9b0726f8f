package currency

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRate(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected float64
		found    bool
	}{
		{name: "base currency", code: "USD", expected: 1.0, found: true},
		{name: "euro", code: "EUR", expected: 0.85, found: true},
		{name: "yen", code: "JPY", expected: 110.0, found: true},
		{name: "won", code: "KRW", expected: 1175.0, found: true},
		{name: "unknown code", code: "XYZ", found: false},
		{name: "lowercase is not normalised", code: "usd", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := FallbackRate(tt.code)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.expected, rate, 1e-12)
			}
		})
	}
}

func TestBaseCurrencyRateIsOne(t *testing.T) {
	rate, ok := FallbackRate(BaseCurrency)
	require.True(t, ok)
	assert.Equal(t, 1.0, rate)
}

func TestEveryNamedCurrencyHasFallbackRate(t *testing.T) {
	for code := range names {
		assert.True(t, IsSupported(code), "named currency %s has no fallback rate", code)
	}
	assert.Len(t, names, Count())
}

func TestFallbackRatesArePositive(t *testing.T) {
	for code, rate := range FallbackRates() {
		assert.Greater(t, rate, 0.0, "rate for %s", code)
		assert.True(t, IsValidCode(code), "code %s", code)
	}
}

func TestFallbackRatesReturnsCopy(t *testing.T) {
	rates := FallbackRates()
	rates["USD"] = 42
	delete(rates, "EUR")

	rate, _ := FallbackRate("USD")
	assert.Equal(t, 1.0, rate)
	assert.True(t, IsSupported("EUR"))
}

func TestName(t *testing.T) {
	assert.Equal(t, "US Dollar", Name("USD"))
	assert.Equal(t, "Polish Złoty", Name("PLN"))
	assert.Equal(t, UnknownName, Name("BTC"))
}

func TestListSupported(t *testing.T) {
	codes := ListSupported()
	assert.Len(t, codes, 28)
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Equal(t, "AED", codes[0])
	assert.Equal(t, "ZAR", codes[len(codes)-1])
}

func TestIsValidCode(t *testing.T) {
	validCodes := []string{"USD", "EUR", "GBP", "JPY", "CAD", "XYZ"}
	for _, code := range validCodes {
		assert.True(t, IsValidCode(code), "Code %s should be valid", code)
	}

	invalidCodes := []string{"usd", "US", "USDD", "123", "US1", "", "ÜSD"}
	for _, code := range invalidCodes {
		assert.False(t, IsValidCode(code), "Code %s should be invalid", code)
	}
}
