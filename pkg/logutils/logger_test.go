package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markHook struct{}

func (markHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Bool("hooked", true)
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "placementpal.log")

	logger, closer, err := New("info", file, markHook{})
	require.NoError(t, err)

	logger.Debug().Msg("dropped")
	logger.Info().Msg("kept")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"message":"kept"`)
	assert.Contains(t, lines[0], `"hooked":true`)
}

func TestNew_Appends(t *testing.T) {
	file := filepath.Join(t.TempDir(), "placementpal.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	assert.Error(t, err)
}
