// Package printer writes styled, human-oriented command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/placementpal/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New returns a Printer writing normal output to out and errors to errOut.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, err: errOut}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one bound to stdout and stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Writer returns the normal output stream.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Success prints a check mark, a title and an optional detail.
func (p *Printer) Success(title, detail string) {
	line := styles.SuccessStyle.Render("✔ " + title)
	if detail != "" {
		line += " " + styles.SubtleStyle.Render(detail)
	}
	_, _ = fmt.Fprintln(p.out, line)
}

// Successf prints a formatted success line.
func (p *Printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.SuccessStyle.Render("✔ "+fmt.Sprintf(format, args...)))
}

// Infof prints a formatted informational line.
func (p *Printer) Infof(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.LabelStyle.Render("•")+" "+fmt.Sprintf(format, args...))
}

// Warnf prints a formatted warning to the error stream.
func (p *Printer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.err, styles.StatusInProgressStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf prints a formatted error to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.err, styles.ErrorStyle.Render("✘ "+fmt.Sprintf(format, args...)))
}

// Printf prints a formatted plain line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Header prints a bold section header.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.out, styles.HeaderStyle.Render(title))
}
