package roadmap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	core "github.com/colonyops/placementpal/internal/core/roadmap"
	"github.com/colonyops/placementpal/internal/core/styles"
)

// View renders the roadmap.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.HeaderStyle.Render("Learning Roadmap"))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render("Your personalized path to mastery"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(fmt.Sprintf(" Generating roadmap for %s at %s...", m.role, m.company))
		b.WriteString("\n")
	case m.tracker.Len() == 0:
		b.WriteString(m.emptyView())
	default:
		b.WriteString(m.milestonesView())
		b.WriteString("\n")
		b.WriteString(m.goalView())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) emptyView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.MilestoneTitleStyle.Render("Ready to plan?"),
		styles.SubtleStyle.Render("Press r to generate a personalized study roadmap."),
		"",
	)
}

func (m Model) milestonesView() string {
	var b strings.Builder

	for i, ms := range m.tracker.Milestones() {
		cursor := "  "
		titleStyle := styles.MilestoneTitleStyle
		if i == m.cursor {
			cursor = styles.MilestoneSelectedStyle.Render("> ")
			titleStyle = styles.MilestoneSelectedStyle
		}

		b.WriteString(cursor)
		b.WriteString(styles.StatusStyle(ms.Status).Render(styles.StatusIcon(ms.Status)))
		b.WriteString(" ")
		b.WriteString(titleStyle.Render(ms.Title))
		b.WriteString("  ")
		b.WriteString(styles.StatusStyle(ms.Status).Render("[" + ms.Status.String() + "]"))
		b.WriteString("\n")

		if ms.Description != "" {
			b.WriteString(styles.MilestoneDescStyle.Render(ms.Description))
			b.WriteString("\n")
		}
		if ms.Date != "" {
			b.WriteString(styles.MilestoneDateStyle.Render(ms.Date))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) goalView() string {
	p := m.tracker.ProgressSummary()

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render("Goal"),
		fmt.Sprintf("Pass the interview for %s at %s.", m.role, m.company),
		"",
		m.progress.ViewAs(float64(p.Percentage)/100),
		ProgressLine(p),
	)

	return styles.GoalBoxStyle.Render(body) + "\n"
}

// ProgressLine formats a summary as "N% Progress  c/t Done".
func ProgressLine(p core.Progress) string {
	return fmt.Sprintf("%d%% Progress  %d/%d Done", p.Percentage, p.CompletedCount, p.Total)
}
