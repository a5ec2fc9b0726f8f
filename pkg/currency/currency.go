// Package currency holds the static currency catalogue used when live rates
// are unavailable: approximate USD-relative rates and display names.
//
// Both tables are fixed at compile time and never mutated. Callers only get
// lookups or copies.
package currency

import (
	"sort"
)

const (
	// BaseCurrency is the currency every fallback rate is quoted against.
	BaseCurrency = "USD"
	// UnknownName is shown for codes that have no display name.
	UnknownName = "Unknown Currency"
)

// fallbackRates maps a currency code to its approximate price per 1 USD.
var fallbackRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"GBP": 0.73,
	"JPY": 110.0,
	"AUD": 1.35,
	"CAD": 1.25,
	"CHF": 0.92,
	"CNY": 6.45,
	"INR": 74.5,
	"NZD": 1.42,
	"SGD": 1.35,
	"HKD": 7.78,
	"SEK": 8.65,
	"KRW": 1175.0,
	"BRL": 5.25,
	"RUB": 73.5,
	"ZAR": 14.8,
	"MXN": 20.0,
	"AED": 3.67,
	"THB": 33.3,
	"TRY": 8.65,
	"SAR": 3.75,
	"DKK": 6.35,
	"NOK": 8.95,
	"ILS": 3.25,
	"MYR": 4.20,
	"PLN": 3.90,
	"PHP": 50.5,
}

var names = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
	"AUD": "Australian Dollar",
	"CAD": "Canadian Dollar",
	"CHF": "Swiss Franc",
	"CNY": "Chinese Yuan",
	"INR": "Indian Rupee",
	"NZD": "New Zealand Dollar",
	"SGD": "Singapore Dollar",
	"HKD": "Hong Kong Dollar",
	"SEK": "Swedish Krona",
	"KRW": "South Korean Won",
	"BRL": "Brazilian Real",
	"RUB": "Russian Ruble",
	"ZAR": "South African Rand",
	"MXN": "Mexican Peso",
	"AED": "UAE Dirham",
	"THB": "Thai Baht",
	"TRY": "Turkish Lira",
	"SAR": "Saudi Riyal",
	"DKK": "Danish Krone",
	"NOK": "Norwegian Krone",
	"ILS": "Israeli Shekel",
	"MYR": "Malaysian Ringgit",
	"PLN": "Polish Złoty",
	"PHP": "Philippine Peso",
}

// FallbackRate returns the approximate USD-relative rate for code.
func FallbackRate(code string) (float64, bool) {
	rate, ok := fallbackRates[code]
	return rate, ok
}

// FallbackRates returns a copy of the whole fallback table.
func FallbackRates() map[string]float64 {
	rates := make(map[string]float64, len(fallbackRates))
	for code, rate := range fallbackRates {
		rates[code] = rate
	}
	return rates
}

// Name returns the display name for code, or UnknownName.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return UnknownName
}

// IsSupported checks if a currency code has a fallback rate
func IsSupported(code string) bool {
	_, ok := fallbackRates[code]
	return ok
}

// ListSupported returns every code with a fallback rate, sorted ascending.
func ListSupported() []string {
	codes := make([]string, 0, len(fallbackRates))
	for code := range fallbackRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Count returns the number of currencies in the fallback table
func Count() int {
	return len(fallbackRates)
}

// IsValidCode reports whether code looks like an ISO 4217 code:
// exactly three upper-case ASCII letters.
func IsValidCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
