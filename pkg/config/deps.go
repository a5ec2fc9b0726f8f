package config

import (
	"log/slog"

	"github.com/amirasaad/currency-converter/pkg/provider"
	"github.com/amirasaad/currency-converter/pkg/service/exchange"
)

// Deps holds all infrastructure dependencies for building the CLI.
type Deps struct {
	RateSource provider.RateSource
	Converter  *exchange.Service
	Logger     *slog.Logger
	Config     *App
}
