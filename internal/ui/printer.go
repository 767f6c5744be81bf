// Package ui provides terminal output and prompts for the CLI.
package ui

import (
	"fmt"
	"io"
)

// Printer writes user-facing status lines. Debug lines appear only when
// verbose is set.
type Printer struct {
	out     io.Writer
	err     io.Writer
	verbose bool
}

// NewPrinter returns a printer writing to out and err.
func NewPrinter(out, err io.Writer, verbose bool) *Printer {
	return &Printer{out: out, err: err, verbose: verbose}
}

// Err returns the writer for warnings and failures.
func (p *Printer) Err() io.Writer {
	return p.err
}

// Title prints a section header to out.
func (p *Printer) Title(format string, args ...any) {
	TitleStyle.Fprintf(p.out, format+"\n", args...)
}

// Info prints a progress line to out.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", IconSearch, InfoStyle.Sprintf(format, args...))
}

// Success prints a completion line to out.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", IconSuccess, SuccessStyle.Sprintf(format, args...))
}

// Warn prints a warning to err.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.err, "%s %s\n", IconWarning, WarningStyle.Sprintf(format, args...))
}

// Error prints a failure to err.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.err, "%s %s\n", IconError, ErrorStyle.Sprintf(format, args...))
}

// Debug prints only in verbose mode.
func (p *Printer) Debug(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.err, "  %s %s\n", IconInfo, HelpStyle.Sprintf(format, args...))
}
