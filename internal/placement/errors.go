package placement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// BackendError is an application-level failure reported in a 2xx response
// body as {"error": "..."}.
type BackendError struct {
	Endpoint string
	Message  string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend error: %s", e.Endpoint, e.Message)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.Code, e.Body)
}

type errorBody struct {
	Error *string `json:"error"`
}

// checkErrorBody returns a BackendError when body is an object carrying an
// "error" key, or an array whose first element does.
func checkErrorBody(endpoint string, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	var eb errorBody
	switch trimmed[0] {
	case '{':
		if err := json.Unmarshal(trimmed, &eb); err != nil {
			return nil
		}
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil || len(list) == 0 {
			return nil
		}
		if err := json.Unmarshal(list[0], &eb); err != nil {
			return nil
		}
	default:
		return nil
	}

	if eb.Error == nil {
		return nil
	}
	return &BackendError{Endpoint: endpoint, Message: *eb.Error}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
