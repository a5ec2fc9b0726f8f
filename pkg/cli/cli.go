// Package cli implements the interactive currency converter menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/amirasaad/currency-converter/pkg/currency"
	"github.com/amirasaad/currency-converter/pkg/money"
	"github.com/amirasaad/currency-converter/pkg/service/exchange"
)

// Menu choices.
const (
	ChoiceConvert = "1"
	ChoiceList    = "2"
	ChoiceExit    = "3"
)

// Messages shown to the user.
const (
	MsgWelcome       = "Welcome to Currency Converter"
	MsgTagline       = "Supports major currencies worldwide"
	MsgFarewell      = "Thank you for using Currency Converter. See you!"
	MsgInvalidChoice = "Invalid choice. Please enter 1, 2, or 3."
	MsgInvalidNumber = "Please enter a valid number for the amount."
	MsgNotPositive   = "Please enter a positive amount."

	promptChoice = "Enter your choice (1/2/3): "
	promptAmount = "Enter the amount to convert: "
	promptFrom   = "Enter the currency to convert from (e.g., USD, EUR): "
	promptTo     = "Enter the currency to convert to (e.g., USD, EUR): "
)

// Converter is the conversion service the menu drives.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (*exchange.Result, error)
	ListSupportedCurrencies(ctx context.Context, base string) (*exchange.RateTable, error)
}

// CLI is the interactive menu loop.
type CLI struct {
	in        *bufio.Reader
	printer   *Printer
	converter Converter
	listBase  string
	logger    *slog.Logger
}

// Option configures a CLI.
type Option func(*CLI)

// WithListBase sets the base currency for the listing.
func WithListBase(base string) Option {
	return func(c *CLI) {
		if base != "" {
			c.listBase = strings.ToUpper(base)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CLI) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a CLI reading answers from in and writing through printer.
func New(in io.Reader, printer *Printer, converter Converter, opts ...Option) *CLI {
	c := &CLI{
		in:        bufio.NewReader(in),
		printer:   printer,
		converter: converter,
		listBase:  exchange.DefaultListBase,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the menu until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) error {
	c.printer.Title(MsgWelcome)
	c.printer.Println(MsgTagline)

	for {
		c.printMenu()

		choice, err := c.readLine(promptChoice)
		if err != nil {
			return c.finish(err)
		}

		switch choice {
		case ChoiceConvert:
			err = c.convertFlow(ctx)
		case ChoiceList:
			c.listFlow(ctx)
		case ChoiceExit:
			c.printer.Println(MsgFarewell)
			return nil
		default:
			c.logger.Debug("Invalid menu choice", "choice", choice)
			c.printer.Error(MsgInvalidChoice)
		}

		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *CLI) printMenu() {
	c.printer.Println("\nMenu:")
	c.printer.Println("1. Convert Currency")
	c.printer.Println("2. List Supported Currencies")
	c.printer.Println("3. Exit")
}

// convertFlow returns an error only when input cannot be read.
func (c *CLI) convertFlow(ctx context.Context) error {
	raw, err := c.readLine(promptAmount)
	if err != nil {
		return err
	}

	amount, ok := c.parseAmount(raw)
	if !ok {
		return nil
	}

	c.printer.Println("\nAvailable currencies:", strings.Join(currency.ListSupported(), ", "))

	from, err := c.readLine(promptFrom)
	if err != nil {
		return err
	}
	to, err := c.readLine(promptTo)
	if err != nil {
		return err
	}
	from, to = strings.ToUpper(from), strings.ToUpper(to)

	// Only codes with a fallback rate are accepted, even when the live
	// source could handle more.
	for _, code := range []string{from, to} {
		if !currency.IsSupported(code) {
			c.printer.Error(fmt.Sprintf("Error: %s is not a supported currency.", code))
			return nil
		}
	}

	res, err := c.converter.Convert(ctx, amount, from, to)
	if err != nil {
		c.logger.Debug("Conversion failed", "from", from, "to", to, "error", err)
		c.printer.Error(exchange.UserMessage(err))
		return nil
	}

	c.printer.Success(fmt.Sprintf("\n%s %s = %s %s",
		money.FormatAmount(res.Amount), res.From,
		money.FormatAmount(res.Converted), res.To,
	))
	return nil
}

func (c *CLI) parseAmount(raw string) (float64, bool) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		c.printer.Error(MsgInvalidNumber)
		return 0, false
	}
	if amount <= 0 {
		c.printer.Error(MsgNotPositive)
		return 0, false
	}
	return amount, true
}

func (c *CLI) listFlow(ctx context.Context) {
	table, err := c.converter.ListSupportedCurrencies(ctx, c.listBase)
	if err != nil {
		c.logger.Debug("Listing failed", "base", c.listBase, "error", err)
		c.printer.Error(exchange.UserMessage(err))
		return
	}

	c.printer.Title("\nSupported currencies and their current rates:")
	c.printer.Printf("(Base Currency: %s)\n", table.Base)
	c.printer.Println("\nCurrency Code | Currency Name")
	c.printer.Println(strings.Repeat("-", 40))

	for _, code := range table.Codes() {
		c.printer.Printf("%-3s | %-20s | Rate: %s\n",
			code, currency.Name(code), money.FormatRate(table.Rates[code]))
	}
}

// readLine prompts and returns the answer without surrounding whitespace.
// A final line without a newline is still returned; io.EOF comes after.
func (c *CLI) readLine(prompt string) (string, error) {
	c.printer.Printf("%s", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// finish ends the loop: end of input counts as exit.
func (c *CLI) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.printer.Println()
		c.printer.Println(MsgFarewell)
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}
