package roadmap

import "slices"

// Progress is the derived completion summary of a roadmap.
type Progress struct {
	CompletedCount int `json:"completed_count"`
	Total          int `json:"total"`
	Percentage     int `json:"percentage"`
}

// Tracker owns the milestones of the current roadmap. It is not safe for
// concurrent use; all calls are expected from a single event loop.
type Tracker struct {
	milestones []Milestone
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Replace discards the current roadmap and takes a copy of milestones. If any
// milestone is malformed the call fails and the previous roadmap is kept.
func (t *Tracker) Replace(milestones []Milestone) error {
	for i, m := range milestones {
		if err := m.Validate(i); err != nil {
			return err
		}
	}

	t.milestones = slices.Clone(milestones)
	return nil
}

// CycleStatus advances the status of the milestone at index to its next value.
func (t *Tracker) CycleStatus(index int) error {
	if index < 0 || index >= len(t.milestones) {
		return &IndexError{Index: index, Len: len(t.milestones)}
	}

	t.milestones[index].Status = t.milestones[index].Status.Next()
	return nil
}

// ProgressSummary counts completed milestones. Percentage rounds half up and
// is 0 for an empty roadmap.
func (t *Tracker) ProgressSummary() Progress {
	p := Progress{Total: len(t.milestones)}
	for _, m := range t.milestones {
		if m.Status == StatusCompleted {
			p.CompletedCount++
		}
	}

	if p.Total > 0 {
		// integer form of floor(x + 0.5) for x = completed*100/total
		p.Percentage = (p.CompletedCount*200 + p.Total) / (2 * p.Total)
	}

	return p
}

// Len returns the number of tracked milestones.
func (t *Tracker) Len() int {
	return len(t.milestones)
}

// At returns a copy of the milestone at index.
func (t *Tracker) At(index int) (Milestone, error) {
	if index < 0 || index >= len(t.milestones) {
		return Milestone{}, &IndexError{Index: index, Len: len(t.milestones)}
	}
	return t.milestones[index], nil
}

// Milestones returns a copy of the tracked roadmap in order.
func (t *Tracker) Milestones() []Milestone {
	return slices.Clone(t.milestones)
}
