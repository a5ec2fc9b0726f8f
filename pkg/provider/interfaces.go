package provider

import (
	"context"
	"errors"
)

// Common errors for provider operations
var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrUnsupportedPair     = errors.New("unsupported currency pair")
)

// RateSource is a live exchange rate service.
// Any error it returns is treated the same way by callers: the live
// source is considered unavailable for that request.
type RateSource interface {
	// Convert converts amount from one currency to another at the live rate.
	Convert(ctx context.Context, from, to string, amount float64) (float64, error)

	// Rates returns every rate the service quotes relative to base.
	Rates(ctx context.Context, base string) (map[string]float64, error)

	// Name returns the provider's name for logging and identification.
	Name() string
}
