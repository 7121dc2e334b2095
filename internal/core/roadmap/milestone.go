// Package roadmap holds the milestone tracker behind the roadmap page: an
// ordered list of milestones whose statuses are cycled by the user, plus the
// derived progress summary.
package roadmap

import (
	"fmt"
	"strings"
)

// Milestone is one step of a generated preparation roadmap.
type Milestone struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
	Date        string `json:"date"` // display only, never parsed
}

// Validate checks the milestone against the record shape. The index is only
// used to annotate the returned ShapeError.
func (m Milestone) Validate(index int) error {
	if strings.TrimSpace(m.Title) == "" {
		return &ShapeError{Index: index, Field: "title", Reason: "is required"}
	}
	if !m.Status.IsValid() {
		return &ShapeError{Index: index, Field: "status", Reason: fmt.Sprintf("invalid status %q", m.Status)}
	}
	return nil
}

