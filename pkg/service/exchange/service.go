// Package exchange converts amounts between currencies. It asks a live
// provider first and falls back to the static rate table in pkg/currency
// when the provider fails.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/amirasaad/currency-converter/pkg/currency"
	"github.com/amirasaad/currency-converter/pkg/provider"
	"github.com/go-playground/validator/v10"
)

// ---- Constants ----

const (
	// DefaultListBase is the base currency used when listing rates.
	DefaultListBase = "EUR"

	// ConvertFallbackNotice is emitted when a conversion used fallback rates.
	ConvertFallbackNotice = "Note: Using backup exchange rates as live rates are unavailable."
	// ListFallbackNotice is emitted when a listing used fallback rates.
	ListFallbackNotice = "Note: Using backup currency list as live rates are unavailable."
)

// Source tells where a rate came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// ---- Types ----

// Result is a completed conversion.
type Result struct {
	Amount    float64
	From      string
	To        string
	Converted float64
	Source    Source
}

// RateTable holds rates relative to Base.
type RateTable struct {
	Base   string
	Rates  map[string]float64
	Source Source
}

// Codes returns the table's currency codes sorted ascending.
func (t *RateTable) Codes() []string {
	codes := make([]string, 0, len(t.Rates))
	for code := range t.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Notifier receives informational notices, such as the fallback notice.
type Notifier func(message string)

type conversionRequest struct {
	Amount float64 `validate:"finite,gt=0"`
	From   string  `validate:"required,len=3,alpha,uppercase"`
	To     string  `validate:"required,len=3,alpha,uppercase"`
}

type listRequest struct {
	Base string `validate:"required,len=3,alpha,uppercase"`
}

// ---- Service ----

// Service handles currency conversion with live rates and a static fallback.
type Service struct {
	source   provider.RateSource
	logger   *slog.Logger
	notify   Notifier
	validate *validator.Validate
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier sets the receiver of fallback notices.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notify = n
		}
	}
}

// New creates a new exchange service. A nil source means live rates are
// never available and every request uses the fallback table.
func New(source provider.RateSource, log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}

	s := &Service{
		source:   source,
		logger:   log,
		notify:   func(string) {},
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newValidator panics if a custom tag cannot be registered; that only
// happens when the tag definition itself is wrong.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("exchange: register finite validation: %v", err))
	}
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Convert converts amount from one currency to another.
// Live rates are tried first; on any live failure the fallback table is
// used and a notice is emitted.
func (s *Service) Convert(
	ctx context.Context,
	amount float64,
	from, to string,
) (*Result, error) {
	if err := s.validateStruct(conversionRequest{Amount: amount, From: from, To: to}); err != nil {
		return nil, err
	}

	log := s.logger.With("from", from, "to", to)

	converted, err := s.convertLive(ctx, amount, from, to)
	if err == nil {
		log.Info("Converted with live rate", "provider", s.sourceName(), "amount", amount, "result", converted)
		return &Result{
			Amount:    amount,
			From:      from,
			To:        to,
			Converted: converted,
			Source:    SourceLive,
		}, nil
	}

	log.Warn("Live conversion failed, using fallback rates", "provider", s.sourceName(), "error", err)

	converted, err = FallbackConvert(amount, from, to)
	if err != nil {
		log.Error("Fallback conversion failed", "error", err)
		return nil, err
	}

	s.notify(ConvertFallbackNotice)
	return &Result{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Source:    SourceFallback,
	}, nil
}

// ListSupportedCurrencies returns rates relative to base. Live rates are
// tried first; on failure the fallback table is rebased onto base.
func (s *Service) ListSupportedCurrencies(ctx context.Context, base string) (*RateTable, error) {
	if err := s.validateStruct(listRequest{Base: base}); err != nil {
		return nil, err
	}

	rates, err := s.listLive(ctx, base)
	if err == nil {
		s.logger.Info("Listed live rates", "provider", s.sourceName(), "base", base, "count", len(rates))
		return &RateTable{Base: base, Rates: rates, Source: SourceLive}, nil
	}

	s.logger.Warn("Live rate listing failed, using fallback rates",
		"provider", s.sourceName(), "base", base, "error", err)

	rates, err = FallbackRates(base)
	if err != nil {
		s.logger.Error("Fallback listing failed", "base", base, "error", err)
		return nil, err
	}

	s.notify(ListFallbackNotice)
	return &RateTable{Base: base, Rates: rates, Source: SourceFallback}, nil
}

// ---- Fallback arithmetic ----

// FallbackConvert converts through the fallback table's base currency:
// amount / rate[from] * rate[to], in that order, without rounding.
func FallbackConvert(amount float64, from, to string) (float64, error) {
	fromRate, okFrom := currency.FallbackRate(from)
	toRate, okTo := currency.FallbackRate(to)

	var missing []string
	if !okFrom {
		missing = append(missing, from)
	}
	if !okTo && to != from {
		missing = append(missing, to)
	}
	if len(missing) > 0 {
		return 0, &UnsupportedCurrencyError{Codes: missing}
	}

	baseAmount := amount / fromRate
	result := baseAmount * toRate
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, &FallbackError{
			Err: fmt.Errorf("non-finite result converting %v %s to %s", amount, from, to),
		}
	}
	return result, nil
}

// FallbackRates rebases the whole fallback table onto base:
// rate[code] / rate[base] for every code.
func FallbackRates(base string) (map[string]float64, error) {
	baseRate, ok := currency.FallbackRate(base)
	if !ok {
		return nil, &UnsupportedCurrencyError{Codes: []string{base}}
	}

	table := currency.FallbackRates()
	rates := make(map[string]float64, len(table))
	for code, rate := range table {
		rates[code] = rate / baseRate
	}
	return rates, nil
}

// ---- Private Service Methods ----

func (s *Service) convertLive(
	ctx context.Context,
	amount float64,
	from, to string,
) (float64, error) {
	if s.source == nil {
		return 0, provider.ErrProviderUnavailable
	}

	converted, err := s.source.Convert(ctx, from, to, amount)
	if err != nil {
		return 0, err
	}
	if converted <= 0 || math.IsNaN(converted) || math.IsInf(converted, 0) {
		return 0, fmt.Errorf("invalid live result %v: %w", converted, provider.ErrProviderUnavailable)
	}
	return converted, nil
}

func (s *Service) listLive(ctx context.Context, base string) (map[string]float64, error) {
	if s.source == nil {
		return nil, provider.ErrProviderUnavailable
	}

	rates, err := s.source.Rates(ctx, base)
	if err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no live rates for %s: %w", base, provider.ErrProviderUnavailable)
	}
	return rates, nil
}

func (s *Service) sourceName() string {
	if s.source == nil {
		return "none"
	}
	return s.source.Name()
}

// validateStruct maps validator failures onto the package's sentinel errors.
func (s *Service) validateStruct(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if fe.Field() == "Amount" {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, fe.Value())
	}
	return fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, fe.Value())
}
