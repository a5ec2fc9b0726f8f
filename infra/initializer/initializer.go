package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	infra_provider "github.com/amirasaad/currency-converter/infra/provider"
	"github.com/amirasaad/currency-converter/pkg/config"
	"github.com/amirasaad/currency-converter/pkg/currency"
	"github.com/amirasaad/currency-converter/pkg/service/exchange"
)

// InitializeDependencies initializes all the application dependencies.
// Logs go to logOut; fallback notices go to notify.
func InitializeDependencies(
	cfg *config.App,
	logOut io.Writer,
	notify exchange.Notifier,
) (deps *config.Deps, err error) {
	cfg.Converter.ListBase = strings.ToUpper(strings.TrimSpace(cfg.Converter.ListBase))
	if !currency.IsValidCode(cfg.Converter.ListBase) {
		return nil, fmt.Errorf("invalid list base currency %q", cfg.Converter.ListBase)
	}

	deps = &config.Deps{Config: cfg}

	logger := setupLogger(cfg.Log, logOut).With("session", uuid.NewString())
	slog.SetDefault(logger)
	deps.Logger = logger

	rateSource := infra_provider.NewExchangeRateAPI(
		cfg.ExchangeRate,
		nil,
		logger.With("provider", "exchangerate-api"),
	)
	deps.RateSource = rateSource

	deps.Converter = exchange.New(
		rateSource,
		logger.With("service", "exchange"),
		exchange.WithNotifier(notify),
	)

	logger.Info("Dependencies initialized",
		"env", cfg.Env,
		"provider", rateSource.Name(),
		"list_base", cfg.Converter.ListBase,
	)
	return deps, nil
}
