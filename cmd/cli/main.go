package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/amirasaad/currency-converter/infra/initializer"
	"github.com/amirasaad/currency-converter/pkg/cli"
	"github.com/amirasaad/currency-converter/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Quiet bootstrap logger until the configured one exists
	bootstrap := slog.New(log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel}))
	cfg, err := config.Load(bootstrap, ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	printer := cli.NewPrinter(os.Stdout, cli.ColorEnabled(os.Stdout))

	deps, err := initializer.InitializeDependencies(cfg, os.Stderr, printer.Notice)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := cli.New(
		os.Stdin,
		printer,
		deps.Converter,
		cli.WithListBase(cfg.Converter.ListBase),
		cli.WithLogger(deps.Logger),
	)
	return app.Run(context.Background())
}
