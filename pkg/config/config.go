package config

import (
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fx]"`
}

//revive:disable
type ExchangeRateApi struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://open.er-api.com/v6/latest"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

//revive:enable

type Converter struct {
	// ListBase is the base currency for the supported currencies listing.
	ListBase string `envconfig:"LIST_BASE" default:"EUR"`
}

type App struct {
	Env          string           `envconfig:"APP_ENV" default:"development"`
	Log          *Log             `envconfig:"LOG"`
	ExchangeRate *ExchangeRateApi `envconfig:"EXCHANGE_RATE"`
	Converter    *Converter       `envconfig:"CONVERTER"`
}
