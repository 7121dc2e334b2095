package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/colonyops/placementpal/internal/core/roadmap"
	"github.com/colonyops/placementpal/internal/core/styles"
	tuiroadmap "github.com/colonyops/placementpal/internal/tui/roadmap"
)

// isInteractive reports whether stdin and stdout are both terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the stdout width, or fallback when it is not a terminal.
func terminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return md
	}
	return out
}

// writeMilestoneTable prints milestones and the progress summary as a table.
func writeMilestoneTable(out io.Writer, milestones []roadmap.Milestone, progress roadmap.Progress) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tSTATUS\tDATE\tTITLE")
	for i, m := range milestones {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, m.Status, m.Date, m.Title)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, tuiroadmap.ProgressLine(progress))
}

// bulletList formats items as an indented list, or "none" when empty.
func bulletList(items []string) string {
	if len(items) == 0 {
		return "  " + styles.SubtleStyle.Render("none") + "\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  - ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
