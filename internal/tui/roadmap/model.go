// Package roadmap is the interactive roadmap view: a milestone timeline whose
// statuses are cycled with the keyboard, next to a progress summary.
package roadmap

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	core "github.com/colonyops/placementpal/internal/core/roadmap"
	"github.com/colonyops/placementpal/internal/core/styles"
)

// Generator produces a fresh roadmap for a company and role.
type Generator interface {
	Roadmap(ctx context.Context, company, role string) ([]core.Milestone, error)
}

// roadmapLoadedMsg carries the result of a regenerate request.
type roadmapLoadedMsg struct {
	milestones []core.Milestone
	err        error
}

// Options configures a Model.
type Options struct {
	Company   string
	Role      string
	Tracker   *core.Tracker
	Generator Generator
	Logger    zerolog.Logger
}

// Model is the Bubble Tea model for the roadmap view.
type Model struct {
	ctx     context.Context
	company string
	role    string
	tracker *core.Tracker
	gen     Generator
	logger  zerolog.Logger

	cursor  int
	loading bool
	err     error

	keys     keyMap
	help     help.Model
	progress progress.Model
	spinner  spinner.Model

	width    int
	quitting bool
}

// New creates a roadmap view over opts.Tracker. A nil tracker starts empty.
func New(ctx context.Context, opts Options) Model {
	tracker := opts.Tracker
	if tracker == nil {
		tracker = core.NewTracker()
	}

	m := Model{
		ctx:      ctx,
		company:  opts.Company,
		role:     opts.Role,
		tracker:  tracker,
		gen:      opts.Generator,
		logger:   opts.Logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithGradient(string(styles.CurrentPalette.Primary), string(styles.CurrentPalette.Secondary)), progress.WithWidth(40)),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.HeaderStyle)),
		width:    80,
	}
	m.loading = tracker.Len() == 0 && opts.Generator != nil

	return m
}

// Init starts generation when the view opens on an empty roadmap.
func (m Model) Init() tea.Cmd {
	if m.loading {
		return tea.Batch(m.spinner.Tick, m.generate())
	}
	return nil
}

// Tracker returns the tracker backing the view.
func (m Model) Tracker() *core.Tracker {
	return m.tracker
}

// Cursor returns the index of the selected milestone.
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the last error shown in the view, if any.
func (m Model) Err() error {
	return m.err
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width/2, 20), 60)
		return m, nil

	case roadmapLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("company", m.company).Str("role", m.role).Msg("regenerate roadmap failed")
			m.err = msg.err
			return m, nil
		}
		if err := m.tracker.Replace(msg.milestones); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.tracker.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Cycle):
		if m.loading || m.tracker.Len() == 0 {
			return m, nil
		}
		if err := m.tracker.CycleStatus(m.cursor); err != nil {
			m.err = err
		}

	case key.Matches(msg, m.keys.Regenerate):
		if m.loading || m.gen == nil {
			return m, nil
		}
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.generate())
	}

	return m, nil
}

func (m Model) generate() tea.Cmd {
	gen, ctx, company, role := m.gen, m.ctx, m.company, m.role
	return func() tea.Msg {
		milestones, err := gen.Roadmap(ctx, company, role)
		return roadmapLoadedMsg{milestones: milestones, err: err}
	}
}

// Loading reports whether a generate request is in flight.
func (m Model) Loading() bool {
	return m.loading
}
