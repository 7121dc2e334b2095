package logutils

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// Stderr is the writer used by New when no log file is given. Commands that
// take over the terminal hold it so log lines do not tear the screen.
var Stderr = NewHoldWriter(os.Stderr)

// HoldWriter passes writes through to an underlying writer. Between Hold and
// Release writes are buffered in memory instead. Safe for concurrent use.
type HoldWriter struct {
	mu   sync.Mutex
	w    io.Writer
	held bool
	buf  bytes.Buffer
}

// NewHoldWriter returns a HoldWriter that writes to w.
func NewHoldWriter(w io.Writer) *HoldWriter {
	return &HoldWriter{w: w}
}

// Write writes p to the underlying writer, or buffers it while held.
func (h *HoldWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.held {
		return h.buf.Write(p)
	}
	return h.w.Write(p)
}

// Hold starts buffering writes.
func (h *HoldWriter) Hold() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held = true
}

// Release writes everything buffered since Hold and resumes pass-through.
func (h *HoldWriter) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.held = false
	if h.buf.Len() == 0 {
		return nil
	}

	_, err := h.buf.WriteTo(h.w)
	return err
}
