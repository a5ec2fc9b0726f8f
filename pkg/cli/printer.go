package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer writes CLI output, colouring notices, errors and results when
// colour is enabled.
type Printer struct {
	out     io.Writer
	notice  *color.Color
	errc    *color.Color
	success *color.Color
	title   *color.Color
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:     out,
		notice:  color.New(color.FgYellow),
		errc:    color.New(color.FgRed),
		success: color.New(color.FgGreen, color.Bold),
		title:   color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.notice, p.errc, p.success, p.title} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// ColorEnabled reports whether f is an interactive terminal that should get
// coloured output. NO_COLOR is honoured.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Println writes plain text followed by a newline.
func (p *Printer) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// Printf writes plain formatted text.
func (p *Printer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Notice writes an informational notice. It has the exchange.Notifier shape.
func (p *Printer) Notice(msg string) {
	_, _ = p.notice.Fprintln(p.out, msg)
}

// Error writes an error message.
func (p *Printer) Error(msg string) {
	_, _ = p.errc.Fprintln(p.out, msg)
}

// Success writes a successful result.
func (p *Printer) Success(msg string) {
	_, _ = p.success.Fprintln(p.out, msg)
}

// Title writes a heading.
func (p *Printer) Title(msg string) {
	_, _ = p.title.Fprintln(p.out, msg)
}
