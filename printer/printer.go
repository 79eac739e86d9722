// Package printer configures how diagnostics and rename plans are rendered.
// A Printer is resolved once per invocation and shared read-only afterwards.
package printer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.Color("6")
	green  = lipgloss.Color("2")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	gray   = lipgloss.Color("8")
)

// Printer carries the styles every diagnostic goes through. A silent printer
// swallows output entirely; a no-color printer renders plain text.
type Printer struct {
	silent  bool
	colored bool

	Primary lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

// Color returns a printer with the full style set.
func Color() *Printer {
	return &Printer{
		colored: true,
		Primary: lipgloss.NewStyle().Foreground(cyan),
		Success: lipgloss.NewStyle().Foreground(green),
		Error:   lipgloss.NewStyle().Foreground(red),
		Warning: lipgloss.NewStyle().Foreground(yellow),
		Dim:     lipgloss.NewStyle().Foreground(gray),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// NoColor returns a printer whose styles render plain text.
func NoColor() *Printer {
	plain := lipgloss.NewStyle()
	return &Printer{
		Primary: plain,
		Success: plain,
		Error:   plain,
		Warning: plain,
		Dim:     plain,
		Bold:    plain,
	}
}

// Silent returns a printer that discards everything.
func Silent() *Printer {
	p := NoColor()
	p.silent = true
	return p
}

// IsSilent reports whether the printer discards output.
func (p *Printer) IsSilent() bool { return p.silent }

// IsColored reports whether the printer styles its output.
func (p *Printer) IsColored() bool { return p.colored }

// Printf writes formatted output to stdout unless silent.
func (p *Printer) Printf(format string, a ...any) {
	if p.silent {
		return
	}
	fmt.Printf(format, a...)
}

// Println writes a line to stdout unless silent.
func (p *Printer) Println(a ...any) {
	if p.silent {
		return
	}
	fmt.Println(a...)
}

// Detail prints indented secondary info with an arrow.
func (p *Printer) Detail(msg string) {
	if p.silent {
		return
	}
	fmt.Printf("  %s %s\n", p.Dim.Render("→"), msg)
}

// SuccessMsg prints a success message with a checkmark.
func (p *Printer) SuccessMsg(msg string) {
	if p.silent {
		return
	}
	fmt.Printf("%s %s\n", p.Success.Render("✓"), msg)
}

// WarnMsg prints a warning message.
func (p *Printer) WarnMsg(msg string) {
	if p.silent {
		return
	}
	fmt.Printf("%s %s\n", p.Warning.Render("!"), msg)
}

// ErrorMsg prints an error with its cause to stderr.
func (p *Printer) ErrorMsg(title string, err error) {
	if p.silent {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", p.Error.Render("✗"), title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %s\n", p.Dim.Render(err.Error()))
	}
}
