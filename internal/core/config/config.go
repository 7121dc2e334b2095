// Package config handles configuration loading and validation for placementpal.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/placementpal/internal/core/catalog"
	"github.com/colonyops/placementpal/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Backend     BackendConfig     `yaml:"backend"`
	Catalog     []catalog.Entry   `yaml:"catalog"`
	Experiences ExperiencesConfig `yaml:"experiences"`
	TUI         TUIConfig         `yaml:"tui"`
}

// BackendConfig points the client at the Placement Pal API.
type BackendConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"` // LLM-backed endpoints are slow
}

// ExperiencesConfig lists the companies with curated interview experiences.
type ExperiencesConfig struct {
	Companies []string `yaml:"companies"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend: BackendConfig{
			URL:     "http://localhost:8000",
			Timeout: 2 * time.Minute,
		},
		Catalog: catalog.Default().Entries(),
		Experiences: ExperiencesConfig{
			Companies: []string{"TCS", "Google"},
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Backend.URL == "" {
		c.Backend.URL = defaults.Backend.URL
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = defaults.Backend.Timeout
	}
	if len(c.Catalog) == 0 {
		c.Catalog = defaults.Catalog
	}
	if len(c.Experiences.Companies) == 0 {
		c.Experiences.Companies = defaults.Experiences.Companies
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("backend.url", c.Backend.URL, isRequired),
		c.validateTimeout(),
		criterio.Run("tui.theme", c.TUI.Theme, isKnownTheme),
		c.validateCatalog(),
	)
}

// Companies returns the configured catalog.
func (c *Config) Companies() *catalog.Catalog {
	return catalog.New(c.Catalog)
}

func (c *Config) validateTimeout() error {
	if c.Backend.Timeout < 0 {
		return criterio.NewFieldErrors("backend.timeout", fmt.Errorf("must not be negative"))
	}
	return nil
}

func (c *Config) validateCatalog() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool, len(c.Catalog))

	for i, entry := range c.Catalog {
		field := fmt.Sprintf("catalog[%d]", i)

		name := strings.ToLower(strings.TrimSpace(entry.Company))
		if name == "" {
			errs = errs.Append(field+".company", fmt.Errorf("is required"))
			continue
		}
		if seen[name] {
			errs = errs.Append(field+".company", fmt.Errorf("duplicate company %q", entry.Company))
		}
		seen[name] = true

		for j, role := range entry.Roles {
			if strings.TrimSpace(role) == "" {
				errs = errs.Append(fmt.Sprintf("%s.roles[%d]", field, j), fmt.Errorf("is required"))
			}
		}
	}

	return errs.ToError()
}

func isRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

func isKnownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
