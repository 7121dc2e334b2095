package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/placementpal/internal/core/roadmap"
)

const (
	IconPending    = "○"
	IconInProgress = "◐"
	IconCompleted  = "●"
)

// StatusIcon returns the glyph drawn next to a milestone.
func StatusIcon(s roadmap.Status) string {
	switch s {
	case roadmap.StatusInProgress:
		return IconInProgress
	case roadmap.StatusCompleted:
		return IconCompleted
	default:
		return IconPending
	}
}

// StatusStyle returns the style used for a milestone status.
func StatusStyle(s roadmap.Status) lipgloss.Style {
	switch s {
	case roadmap.StatusInProgress:
		return StatusInProgressStyle
	case roadmap.StatusCompleted:
		return StatusCompletedStyle
	default:
		return StatusPendingStyle
	}
}

// RenderStatus renders a status glyph and label in its color.
func RenderStatus(s roadmap.Status) string {
	return StatusStyle(s).Render(StatusIcon(s) + " " + s.String())
}
