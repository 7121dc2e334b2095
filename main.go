package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/placementpal/internal/commands"
	"github.com/colonyops/placementpal/internal/core/config"
	"github.com/colonyops/placementpal/internal/core/logging"
	"github.com/colonyops/placementpal/internal/core/styles"
	"github.com/colonyops/placementpal/internal/placement"
	"github.com/colonyops/placementpal/internal/printer"
	"github.com/colonyops/placementpal/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "placementpal",
		Usage:     "Prepare for campus placements from the terminal",
		UsageText: "placementpal [global options] command [command options]",
		Description: `Placement Pal helps students prepare for campus placement drives.

Generate a study roadmap for a target company and role and track your
progress through it, analyze your resume for skill gaps and ATS
compatibility, read interview experiences from past candidates, or ask the
placement assistant a question.

Run 'placementpal roadmap' to start planning.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PLACEMENTPAL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("PLACEMENTPAL_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PLACEMENTPAL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "backend",
				Usage:       "Placement Pal backend URL (overrides backend.url)",
				Sources:     cli.EnvVars("PLACEMENTPAL_BACKEND"),
				Destination: &flags.Backend,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, logging.ContextHook{})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.Backend != "" {
				cfg.Backend.URL = strings.TrimRight(flags.Backend, "/")
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			flags.Client = placement.New(cfg.Backend.URL, cfg.Backend.Timeout, logging.Component("placement"))

			log.Debug().
				Str("backend", cfg.Backend.URL).
				Str("config", flags.ConfigPath).
				Msg("placementpal started")

			return printer.NewContext(ctx, printer.New(c.Root().Writer, c.Root().ErrWriter)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewRoadmapCmd(flags).Register(app)
	app = commands.NewTrackCmd(flags).Register(app)
	app = commands.NewChatCmd(flags).Register(app)
	app = commands.NewExperiencesCmd(flags).Register(app)
	app = commands.NewSkillsCmd(flags).Register(app)
	app = commands.NewATSCmd(flags).Register(app)
	app = commands.NewCompaniesCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
