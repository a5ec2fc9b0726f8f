package exchange

import (
	"errors"
	"strings"
)

// Common errors for exchange operations
var (
	// ErrInvalidAmount indicates a zero, negative or non-finite amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrencyCode indicates a code that is not three upper-case letters.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")

	// ErrUnsupportedCurrency indicates a code that the fallback table lacks
	// while live rates are unavailable.
	ErrUnsupportedCurrency = errors.New("currency not supported")

	// ErrFallbackFailed indicates the fallback arithmetic itself failed.
	ErrFallbackFailed = errors.New("fallback conversion failed")
)

// User-facing messages for conversion failures.
const (
	MsgUnsupported   = "Error: Currency not supported or service unavailable."
	MsgFallbackError = "Error during conversion: "
	MsgUnexpected    = "An error occurred: "
)

// UnsupportedCurrencyError names the codes missing from the fallback table.
type UnsupportedCurrencyError struct {
	Codes []string
}

func (e *UnsupportedCurrencyError) Error() string {
	return "currency not supported: " + strings.Join(e.Codes, ", ")
}

// Is makes errors.Is(err, ErrUnsupportedCurrency) match.
func (e *UnsupportedCurrencyError) Is(target error) bool {
	return target == ErrUnsupportedCurrency
}

// FallbackError wraps an unexpected failure of the fallback arithmetic.
type FallbackError struct {
	Err error
}

func (e *FallbackError) Error() string {
	return "fallback conversion failed: " + e.Err.Error()
}

func (e *FallbackError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFallbackFailed) match.
func (e *FallbackError) Is(target error) bool {
	return target == ErrFallbackFailed
}

// UserMessage renders err the way it is shown to the CLI user.
func UserMessage(err error) string {
	var fallbackErr *FallbackError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedCurrency):
		return MsgUnsupported
	case errors.As(err, &fallbackErr):
		return MsgFallbackError + fallbackErr.Err.Error()
	default:
		return MsgUnexpected + err.Error()
	}
}
