package roadmap

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode parses a JSON array of milestones. Each element is validated, and a
// failure is reported as a ShapeError carrying the element's position.
func Decode(data []byte) ([]Milestone, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ShapeError{Index: -1, Field: "roadmap", Reason: "expected a JSON array of milestones"}
	}

	milestones := make([]Milestone, 0, len(raw))
	for i, elem := range raw {
		var m Milestone
		if err := json.Unmarshal(elem, &m); err != nil {
			var shapeErr *ShapeError
			if errors.As(err, &shapeErr) {
				shapeErr.Index = i
				return nil, shapeErr
			}
			return nil, &ShapeError{Index: i, Field: "milestone", Reason: fmt.Sprintf("decode: %v", err)}
		}

		if err := m.Validate(i); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}

	return milestones, nil
}
