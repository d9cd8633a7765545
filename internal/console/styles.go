package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Centralized style definitions for console output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))            // red
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
)

// Printer writes status lines to the console. Styles are applied only
// when styled is set.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, styled bool) *Printer {
	return &Printer{
		out:    out,
		styled: styled,
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Title prints a heading.
func (p *Printer) Title(format string, a ...any) {
	p.println(titleStyle, format, a...)
}

// Success prints the outcome of an operation that changed or found
// something.
func (p *Printer) Success(format string, a ...any) {
	p.println(successStyle, format, a...)
}

// Error prints a recoverable failure.
func (p *Printer) Error(format string, a ...any) {
	p.println(errorStyle, format, a...)
}

// Info prints an unstyled line.
func (p *Printer) Info(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", a...)
}

// Dim prints a secondary line.
func (p *Printer) Dim(format string, a ...any) {
	p.println(dimStyle, format, a...)
}

func (p *Printer) println(style lipgloss.Style, format string, a ...any) {
	line := fmt.Sprintf(format, a...)
	if p.styled {
		line = style.Render(line)
	}
	_, _ = fmt.Fprintln(p.out, line)
}
