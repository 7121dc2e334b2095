// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	HeaderStyle  lipgloss.Style
	SubtleStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	DividerStyle lipgloss.Style
	LabelStyle   lipgloss.Style

	// Milestone status styles.
	StatusPendingStyle    lipgloss.Style
	StatusInProgressStyle lipgloss.Style
	StatusCompletedStyle  lipgloss.Style

	// Roadmap view styles.
	MilestoneTitleStyle    lipgloss.Style
	MilestoneSelectedStyle lipgloss.Style
	MilestoneDescStyle     lipgloss.Style
	MilestoneDateStyle     lipgloss.Style
	GoalBoxStyle           lipgloss.Style
	HelpStyle              lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	SubtleStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Surface)
	LabelStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	StatusPendingStyle = lipgloss.NewStyle().Foreground(p.Muted)
	StatusInProgressStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	StatusCompletedStyle = lipgloss.NewStyle().Foreground(p.Success)

	MilestoneTitleStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	MilestoneSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	MilestoneDescStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		PaddingLeft(4)
	MilestoneDateStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		PaddingLeft(4)
	GoalBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 2)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// FormTheme returns a huh theme derived from the active palette.
func FormTheme() *huh.Theme {
	p := CurrentPalette
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(p.Primary)
	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(p.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p.Primary)
	t.Focused.Option = t.Focused.Option.Foreground(p.Foreground)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p.Success)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}

func colorPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	p := CurrentPalette
	cfg := glamourstyles.DarkStyleConfig
	if p.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := colorPtr(p.Foreground)
	primary := colorPtr(p.Primary)
	secondary := colorPtr(p.Secondary)
	muted := colorPtr(p.Muted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = colorPtr(p.Surface)
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
