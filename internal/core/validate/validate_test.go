package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "TCS", false},
		{"valid with spaces", "System Engineer", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Required(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestResumeFile(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{"pdf", func(t *testing.T) string { return writeFile(t, "resume.pdf", 128) }, ""},
		{"uppercase txt", func(t *testing.T) string { return writeFile(t, "RESUME.TXT", 16) }, ""},
		{"docx", func(t *testing.T) string { return writeFile(t, "resume.docx", 16) }, "unsupported file type"},
		{"empty file", func(t *testing.T) string { return writeFile(t, "resume.pdf", 0) }, "file is empty"},
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "gone.pdf") }, "cannot access"},
		{"blank", func(t *testing.T) string { return "" }, "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ResumeFile(tt.path(t))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAnalyzeRequest(t *testing.T) {
	resume := writeFile(t, "resume.pdf", 64)
	assert.NoError(t, AnalyzeRequest("TCS", "Ninja", resume))

	err := AnalyzeRequest("", "", resume)
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}
