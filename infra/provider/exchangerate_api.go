package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/amirasaad/currency-converter/pkg/config"
	"github.com/amirasaad/currency-converter/pkg/provider"
)

// ExchangeRateAPI implements provider.RateSource for exchangerate-api.com
// and services speaking the same JSON dialect (e.g. open.er-api.com).
//
// With an API key the v6 keyed endpoint {url}/{key}/latest/{base} is used,
// otherwise the open endpoint {url}/{base}.
type ExchangeRateAPI struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ExchangeRateAPIResponse represents a latest-rates response.
// See: https://www.exchangerate-api.com/docs/standard-requests
// The keyed v6 endpoint reports rates under conversion_rates, the open
// endpoint under rates.
type ExchangeRateAPIResponse struct {
	Result             string             `json:"result"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	TimeNextUpdateUnix int64              `json:"time_next_update_unix"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	Rates              map[string]float64 `json:"rates"`
	// Error fields (if any)
	ErrorType string `json:"error-type,omitempty"`
}

func (r *ExchangeRateAPIResponse) rates() map[string]float64 {
	if len(r.ConversionRates) > 0 {
		return r.ConversionRates
	}
	return r.Rates
}

// NewExchangeRateAPI creates a new ExchangeRate API provider using config.
// A nil httpClient gets one with the configured timeout.
func NewExchangeRateAPI(
	cfg *config.ExchangeRateApi,
	httpClient *http.Client,
	logger *slog.Logger,
) *ExchangeRateAPI {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExchangeRateAPI{
		apiKey:     cfg.ApiKey,
		baseURL:    strings.TrimRight(cfg.ApiUrl, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Name returns the provider's name
func (p *ExchangeRateAPI) Name() string {
	return "exchangerate-api"
}

// Convert converts amount at the latest from→to rate.
func (p *ExchangeRateAPI) Convert(
	ctx context.Context,
	from, to string,
	amount float64,
) (float64, error) {
	rates, err := p.fetchLatest(ctx, from)
	if err != nil {
		return 0, err
	}

	rate, exists := rates[to]
	if !exists {
		return 0, fmt.Errorf("currency %s not found in response: %w", to, provider.ErrUnsupportedPair)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("invalid rate %v for %s/%s: %w", rate, from, to, provider.ErrProviderUnavailable)
	}

	return amount * rate, nil
}

// Rates returns all rates quoted against base. The base itself is always
// present with rate 1.
func (p *ExchangeRateAPI) Rates(ctx context.Context, base string) (map[string]float64, error) {
	rates, err := p.fetchLatest(ctx, base)
	if err != nil {
		return nil, err
	}

	results := make(map[string]float64, len(rates)+1)
	for code, rate := range rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			p.logger.Warn("Skipping invalid rate", "base", base, "code", code, "rate", rate)
			continue
		}
		results[code] = rate
	}
	results[base] = 1.0

	return results, nil
}

func (p *ExchangeRateAPI) endpoint(base string) string {
	if p.apiKey != "" {
		return fmt.Sprintf("%s/%s/latest/%s", p.baseURL, p.apiKey, base)
	}
	return fmt.Sprintf("%s/%s", p.baseURL, base)
}

func (p *ExchangeRateAPI) fetchLatest(ctx context.Context, base string) (map[string]float64, error) {
	p.logger.Debug("Fetching exchange rates from API", "base", base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint(base), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w: %w", provider.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf(
			"API returned status %d: %s: %w",
			resp.StatusCode,
			strings.TrimSpace(string(body)),
			provider.ErrProviderUnavailable,
		)
	}

	var apiResp ExchangeRateAPIResponse
	if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Result != "success" {
		if apiResp.ErrorType == "unsupported-code" {
			return nil, fmt.Errorf("API does not support %s: %w", base, provider.ErrUnsupportedPair)
		}
		return nil, fmt.Errorf(
			"API returned result=%s error=%s: %w",
			apiResp.Result,
			apiResp.ErrorType,
			provider.ErrProviderUnavailable,
		)
	}

	rates := apiResp.rates()
	if len(rates) == 0 {
		return nil, fmt.Errorf("API returned no rates for %s: %w", base, provider.ErrProviderUnavailable)
	}

	p.logger.Debug("Exchange rates fetched", "base", base, "count", len(rates))
	return rates, nil
}

// Ensure ExchangeRateAPI implements provider.RateSource
var _ provider.RateSource = (*ExchangeRateAPI)(nil)
