// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
)

// MaxResumeSize caps uploads to the analyzer endpoints.
const MaxResumeSize = 10 << 20

// Required validates a value is non-empty after trimming whitespace.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// ResumeFile validates that path names a readable, non-empty resume the
// backend can parse (PDF or plain text).
func ResumeFile(path string) error {
	if err := Required(path); err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt", ".md":
	default:
		return fmt.Errorf("unsupported file type %q (use .pdf, .txt or .md)", filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("file is empty")
	}
	if info.Size() > MaxResumeSize {
		return fmt.Errorf("file is larger than %d MiB", MaxResumeSize>>20)
	}
	return nil
}

// AnalyzeRequest validates the inputs shared by the skill and ATS analyzers.
func AnalyzeRequest(company, role, file string) error {
	return criterio.ValidateStruct(
		criterio.Run("company", company, Required),
		criterio.Run("role", role, Required),
		criterio.Run("file", file, ResumeFile),
	)
}
