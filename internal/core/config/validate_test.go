package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/placementpal/internal/core/catalog"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate_DuplicateCompany(t *testing.T) {
	cfg := validConfig(t)
	cfg.Catalog = []catalog.Entry{
		{Company: "TCS", Roles: []string{"Ninja"}},
		{Company: "tcs", Roles: []string{"Digital"}},
	}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Field, "catalog[1].company")
	assert.Contains(t, fieldErrs[0].Err.Error(), "duplicate company")
}

func TestValidate_EmptyCompanyAndRole(t *testing.T) {
	cfg := validConfig(t)
	cfg.Catalog = []catalog.Entry{
		{Company: " "},
		{Company: "Acme", Roles: []string{"Engineer", ""}},
	}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestValidate_EmptyBackendURL(t *testing.T) {
	cfg := validConfig(t)
	cfg.Backend.URL = ""

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs[0].Field, "backend.url")
}

func TestValidateDeep_BackendScheme(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://localhost:8000", false},
		{"https", "https://pal.example.com", false},
		{"no scheme", "localhost:8000", true},
		{"ftp", "ftp://files.example.com", true},
		{"no host", "http://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			cfg.Backend.URL = tt.url
			err := cfg.ValidateDeep("")
			assert.Equal(t, tt.wantErr, err != nil, "ValidateDeep() error = %v", err)
		})
	}
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	err := cfg.ValidateDeep(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())

	cfg.Experiences.Companies = []string{"TCS", "Initech"}
	cfg.Catalog = append(cfg.Catalog, catalog.Entry{Company: "Hooli"})

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "Experiences", warnings[0].Category)
	assert.Equal(t, "Initech", warnings[0].Item)
	assert.Equal(t, "Catalog", warnings[1].Category)
	assert.Equal(t, "Hooli", warnings[1].Item)
}
