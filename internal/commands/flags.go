package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/placementpal/internal/core/config"
	"github.com/colonyops/placementpal/internal/placement"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Backend    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Client talks to the Placement Pal backend
	Client *placement.Client
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "placementpal", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/placementpal/placementpal.log
// On Linux: $XDG_STATE_HOME/placementpal/placementpal.log (defaults to ~/.local/state/...)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "placementpal", "placementpal.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "placementpal", "placementpal.log")
	}

	return filepath.Join(home, ".local", "state", "placementpal", "placementpal.log")
}
