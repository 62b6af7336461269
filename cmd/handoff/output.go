package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/handoff/internal/schema"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	// okStyle defines the style for the prefix of a success line.
	okStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	// infoStyle defines the style for the prefix of an informational line.
	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// warnStyle defines the style for the prefix of a warning line.
	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFAF00"))

	// errorStyle defines the style for the prefix of an error line.
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87"))

	// detailStyle defines the style for indented detail lines.
	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingLeft(2) //nolint:mnd
)

// printer writes the user-facing result lines. Styling is only applied when
// the respective stream is a terminal.
type printer struct {
	stdout       io.Writer
	stderr       io.Writer
	stdoutStyled bool
	stderrStyled bool
}

func newPrinter(stdout io.Writer, stderr io.Writer) *printer {
	return &printer{
		stdout:       stdout,
		stderr:       stderr,
		stdoutStyled: isTerminal(stdout),
		stderrStyled: isTerminal(stderr),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}

	return style.Render(s)
}

func (p *printer) line(prefix string, style lipgloss.Style, msg string) {
	fmt.Fprintf(p.stdout, "%s %s\n", render(p.stdoutStyled, style, prefix), msg)
}

func (p *printer) detail(format string, args ...any) {
	fmt.Fprintln(p.stdout, render(p.stdoutStyled, detailStyle, fmt.Sprintf(format, args...)))
}

// Info prints an informational line.
func (p *printer) Info(msg string) {
	p.line("info:", infoStyle, msg)
}

// Success prints a success line.
func (p *printer) Success(msg string) {
	p.line("ok:", okStyle, msg)
}

// Outcome prints the result of a move (or the prediction of a dry-run).
func (p *printer) Outcome(o *schema.MoveOutcome) {
	if o.DryRun {
		p.Info(fmt.Sprintf("dry-run: would move %q -> %q (%s)", o.SourcePath, o.DestinationPath, o.Method))
	} else {
		p.Success(fmt.Sprintf("moved %q -> %q (%s)", o.SourcePath, o.DestinationPath, o.Method))
	}

	if o.Method == schema.MethodCopyFallback {
		if o.DryRun {
			p.detail("bytes to copy: %s", humanize.IBytes(o.BytesMoved))
		} else {
			p.detail("bytes copied: %s", humanize.IBytes(o.BytesMoved))
		}
	}

	if o.Space != nil {
		if o.Space.Unknown {
			p.detail("free space: unknown (required %s)", humanize.IBytes(o.Space.RequiredBytes))
		} else {
			p.detail("free space: %s (required %s)",
				humanize.IBytes(o.Space.AvailableBytes), humanize.IBytes(o.Space.RequiredBytes))
		}
	}

	for _, w := range o.Warnings {
		fmt.Fprintf(p.stderr, "%s %s\n", render(p.stderrStyled, warnStyle, "warn:"), w.String())
	}
}

// Failure prints an error line.
func (p *printer) Failure(err error) {
	fmt.Fprintf(p.stderr, "%s %v\n", render(p.stderrStyled, errorStyle, "error:"), err)
}
