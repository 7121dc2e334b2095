package roadmap

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/colonyops/placementpal/internal/core/roadmap"
	"github.com/colonyops/placementpal/pkg/tuitest"
)

type stubGenerator struct {
	milestones []core.Milestone
	err        error
	calls      int
}

func (g *stubGenerator) Roadmap(_ context.Context, _, _ string) ([]core.Milestone, error) {
	g.calls++
	return g.milestones, g.err
}

func sampleMilestones() []core.Milestone {
	return []core.Milestone{
		{Title: "Quantitative Aptitude", Status: core.StatusPending, Date: "Week 1", Description: "Percentages"},
		{Title: "Logical Reasoning", Status: core.StatusPending, Date: "Week 2"},
		{Title: "Coding Round", Status: core.StatusPending, Date: "Week 3"},
		{Title: "HR Interview", Status: core.StatusPending, Date: "Week 4"},
	}
}

func newModel(t *testing.T, gen Generator, milestones []core.Milestone) Model {
	t.Helper()
	tracker := core.NewTracker()
	if milestones != nil {
		require.NoError(t, tracker.Replace(milestones))
	}
	return New(context.Background(), Options{
		Company:   "TCS",
		Role:      "Ninja",
		Tracker:   tracker,
		Generator: gen,
		Logger:    zerolog.Nop(),
	})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_CycleSelected(t *testing.T) {
	m := newModel(t, nil, sampleMilestones())

	m, _ = press(t, m, tuitest.KeyEnter())
	m, _ = press(t, m, tuitest.KeyEnter())

	first, err := m.Tracker().At(0)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCompleted, first.Status)
	assert.Equal(t, core.Progress{CompletedCount: 1, Total: 4, Percentage: 25}, m.Tracker().ProgressSummary())
	assert.Contains(t, tuitest.StripANSI(m.View()), "25% Progress  1/4 Done")
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(t, nil, sampleMilestones())

	m, _ = press(t, m, tuitest.KeyPressString("k"))
	assert.Equal(t, 0, m.Cursor(), "cursor stays at top")

	for range 10 {
		m, _ = press(t, m, tuitest.KeyPressString("j"))
	}
	assert.Equal(t, 3, m.Cursor(), "cursor stops at last milestone")

	m, _ = press(t, m, tuitest.KeyEnter())
	last, err := m.Tracker().At(3)
	require.NoError(t, err)
	assert.Equal(t, core.StatusInProgress, last.Status)

	first, err := m.Tracker().At(0)
	require.NoError(t, err)
	assert.Equal(t, core.StatusPending, first.Status)
}

func TestModel_CycleOnEmptyIsNoop(t *testing.T) {
	m := newModel(t, nil, nil)

	m, _ = press(t, m, tuitest.KeyEnter())
	assert.NoError(t, m.Err())
	assert.Contains(t, tuitest.StripANSI(m.View()), "Ready to plan?")
}

func TestModel_InitGeneratesWhenEmpty(t *testing.T) {
	gen := &stubGenerator{milestones: sampleMilestones()}
	m := newModel(t, gen, nil)

	assert.True(t, m.Loading())
	require.NotNil(t, m.Init())

	next, _ := m.Update(roadmapLoadedMsg{milestones: gen.milestones})
	m = next.(Model)
	assert.False(t, m.Loading())
	assert.Equal(t, 4, m.Tracker().Len())
}

func TestModel_InitIdleWithRoadmap(t *testing.T) {
	m := newModel(t, &stubGenerator{}, sampleMilestones())
	assert.False(t, m.Loading())
	assert.Nil(t, m.Init())
}

func TestModel_Regenerate(t *testing.T) {
	fresh := []core.Milestone{{Title: "System Design", Status: core.StatusPending, Date: "Week 1"}}
	gen := &stubGenerator{milestones: fresh}
	m := newModel(t, gen, sampleMilestones())

	for range 3 {
		m, _ = press(t, m, tuitest.KeyPressString("j"))
	}

	m, cmd := press(t, m, tuitest.KeyPressString("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())

	m, _ = press(t, m, tuitest.KeyEnter())
	assert.Equal(t, 4, m.Tracker().Len(), "cycling is ignored while loading")

	milestones, err := gen.Roadmap(context.Background(), "TCS", "Ninja")
	next, _ := m.Update(roadmapLoadedMsg{milestones: milestones, err: err})
	m = next.(Model)

	assert.Equal(t, fresh, m.Tracker().Milestones())
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_RegenerateFailureKeepsRoadmap(t *testing.T) {
	gen := &stubGenerator{err: errors.New("backend unavailable")}
	m := newModel(t, gen, sampleMilestones())

	m, _ = press(t, m, tuitest.KeyEnter())
	m, _ = press(t, m, tuitest.KeyPressString("r"))

	next, _ := m.Update(roadmapLoadedMsg{err: gen.err})
	m = next.(Model)

	require.Error(t, m.Err())
	assert.Equal(t, 4, m.Tracker().Len())
	first, _ := m.Tracker().At(0)
	assert.Equal(t, core.StatusInProgress, first.Status)
	assert.Contains(t, tuitest.StripANSI(m.View()), "backend unavailable")
}

func TestModel_RegenerateMalformedKeepsRoadmap(t *testing.T) {
	m := newModel(t, &stubGenerator{}, sampleMilestones())

	next, _ := m.Update(roadmapLoadedMsg{milestones: []core.Milestone{{Title: "", Status: core.StatusPending}}})
	m = next.(Model)

	assert.ErrorIs(t, m.Err(), core.ErrInvalidShape)
	assert.Equal(t, sampleMilestones(), m.Tracker().Milestones())
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, nil, sampleMilestones())

	m, cmd := press(t, m, tuitest.KeyPressString("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, tuitest.StripANSI(m.View()))
}

func TestModel_ViewShowsMilestones(t *testing.T) {
	m := newModel(t, nil, sampleMilestones())
	view := tuitest.StripANSI(m.View())

	assert.Contains(t, view, "Quantitative Aptitude")
	assert.Contains(t, view, "Percentages")
	assert.Contains(t, view, "Week 4")
	assert.Contains(t, view, "Pass the interview for Ninja at TCS.")
	assert.Contains(t, view, "0% Progress  0/4 Done")
}

func TestProgressLine(t *testing.T) {
	assert.Equal(t, "33% Progress  1/3 Done", ProgressLine(core.Progress{CompletedCount: 1, Total: 3, Percentage: 33}))
}

func TestModel_SpaceAndArrows(t *testing.T) {
	m := newModel(t, nil, sampleMilestones())

	m, _ = press(t, m, tuitest.KeyDown())
	m, _ = press(t, m, tuitest.KeySpace())
	m, _ = press(t, m, tuitest.KeyUp())

	assert.Equal(t, 0, m.Cursor())
	second, err := m.Tracker().At(1)
	require.NoError(t, err)
	assert.Equal(t, core.StatusInProgress, second.Status)
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t, nil, sampleMilestones())

	next, cmd := m.Update(tuitest.WindowSize(120, 40))
	assert.Nil(t, cmd)
	m = next.(Model)
	assert.Contains(t, tuitest.StripANSI(m.View()), "0% Progress  0/4 Done")
}
