package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/placementpal/internal/core/logging"
	"github.com/colonyops/placementpal/internal/core/roadmap"
	"github.com/colonyops/placementpal/internal/printer"
	tuiroadmap "github.com/colonyops/placementpal/internal/tui/roadmap"
	"github.com/colonyops/placementpal/pkg/iojson"
	"github.com/colonyops/placementpal/pkg/logutils"
)

type RoadmapCmd struct {
	flags *Flags

	// flags
	target     target
	jsonOutput bool
}

// roadmapOutput is the JSON output format for roadmap and track.
type roadmapOutput struct {
	Company    string              `json:"company,omitempty"`
	Role       string              `json:"role,omitempty"`
	Milestones []roadmap.Milestone `json:"milestones"`
	Progress   roadmap.Progress    `json:"progress"`
}

// NewRoadmapCmd creates a new roadmap command
func NewRoadmapCmd(flags *Flags) *RoadmapCmd {
	return &RoadmapCmd{flags: flags}
}

// Register adds the roadmap command to the application
func (cmd *RoadmapCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "roadmap",
		Usage:     "Generate and track a preparation roadmap",
		UsageText: "placementpal roadmap [--company C] [--role R] [--json]",
		Description: `Generates a personalized study roadmap for a target company and role.

The roadmap opens in an interactive view where each milestone can be cycled
through pending, in-progress and completed while the progress bar updates.

When --company is omitted an interactive form asks for company and role.
An omitted --role defaults to the company's first role.

Use --json to print the generated milestones and their progress instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "company",
				Usage:       "target company",
				Destination: &cmd.target.company,
			},
			&cli.StringFlag{
				Name:        "role",
				Usage:       "target role (defaults to the company's first role)",
				Destination: &cmd.target.role,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print milestones as JSON instead of opening the interactive view",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RoadmapCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "roadmap")

	if err := cmd.target.resolve(cmd.flags.Config.Companies(), !cmd.jsonOutput && isInteractive()); err != nil {
		if errors.Is(err, errAborted) {
			return nil
		}
		return err
	}

	if cmd.jsonOutput {
		return cmd.runJSON(ctx, c)
	}

	return cmd.runInteractive(ctx)
}

func (cmd *RoadmapCmd) runJSON(ctx context.Context, c *cli.Command) error {
	milestones, err := cmd.flags.Client.Roadmap(ctx, cmd.target.company, cmd.target.role)
	if err != nil {
		return fmt.Errorf("generate roadmap: %w", err)
	}

	tracker := roadmap.NewTracker()
	if err := tracker.Replace(milestones); err != nil {
		return fmt.Errorf("load roadmap: %w", err)
	}

	return iojson.Write(c.Root().Writer, roadmapOutput{
		Company:    cmd.target.company,
		Role:       cmd.target.role,
		Milestones: tracker.Milestones(),
		Progress:   tracker.ProgressSummary(),
	})
}

func (cmd *RoadmapCmd) runInteractive(ctx context.Context) error {
	p := printer.Ctx(ctx)

	m := tuiroadmap.New(ctx, tuiroadmap.Options{
		Company:   cmd.target.company,
		Role:      cmd.target.role,
		Generator: cmd.flags.Client,
		Logger:    logging.Component("roadmap"),
	})

	logutils.Stderr.Hold()
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if rerr := logutils.Stderr.Release(); rerr != nil {
		log.Debug().Err(rerr).Msg("failed to flush held log output")
	}
	if err != nil {
		return fmt.Errorf("run roadmap view: %w", err)
	}

	if fm, ok := final.(tuiroadmap.Model); ok && fm.Tracker().Len() > 0 {
		p.Success("Roadmap session ended", tuiroadmap.ProgressLine(fm.Tracker().ProgressSummary()))
	}

	return nil
}
