package roadmap

import (
	"encoding/json"
	"fmt"
)

// Status is the progress state of a single milestone.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every valid status in cycle order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status %q", s)
	}
	return st, nil
}

// IsValid reports whether s is one of the enumerated statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Next returns the status that follows s in the cycle
// pending -> in-progress -> completed -> pending.
//
// Next is total: an invalid status restarts the cycle at in-progress, the same
// as pending, so callers never observe a value outside the enumeration.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	case StatusCompleted:
		return StatusPending
	default:
		return StatusInProgress
	}
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON rejects any string outside the enumeration.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ShapeError{Index: -1, Field: "status", Reason: "must be a string"}
	}

	st, err := ParseStatus(raw)
	if err != nil {
		return &ShapeError{Index: -1, Field: "status", Reason: err.Error()}
	}

	*s = st
	return nil
}
