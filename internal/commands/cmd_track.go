package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/placementpal/internal/core/roadmap"
	"github.com/colonyops/placementpal/pkg/iojson"
)

type TrackCmd struct {
	flags *Flags

	// flags
	input      iojson.FileReader[[]roadmap.Milestone]
	cycles     []string
	jsonOutput bool
}

// NewTrackCmd creates a new track command
func NewTrackCmd(flags *Flags) *TrackCmd {
	return &TrackCmd{flags: flags}
}

// Register adds the track command to the application
func (cmd *TrackCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "track",
		Usage:     "Update milestone statuses in a saved roadmap",
		UsageText: "placementpal track [-f roadmap.json] [--cycle INDEX]... [--json]",
		Description: `Loads a roadmap (a JSON array of milestones) and advances milestone statuses.

Each --cycle moves the milestone at INDEX (zero based) to its next status:
pending -> in-progress -> completed -> pending. Cycles are applied in order,
so repeating an index advances it again.

The roadmap is read from --file or piped stdin. Save the output of
'placementpal roadmap --json | jq .milestones' to track progress offline.

Examples:
  placementpal track -f roadmap.json --cycle 0 --cycle 0
  cat roadmap.json | placementpal track --cycle 2 --json`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringSliceFlag{
				Name:        "cycle",
				Usage:       "milestone index to advance (repeatable)",
				Destination: &cmd.cycles,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output milestones and progress as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *TrackCmd) run(ctx context.Context, c *cli.Command) error {
	data, err := cmd.input.ReadBytes()
	if err != nil {
		return err
	}

	milestones, err := roadmap.Decode(data)
	if err != nil {
		return fmt.Errorf("read roadmap: %w", err)
	}

	tracker := roadmap.NewTracker()
	if err := tracker.Replace(milestones); err != nil {
		return fmt.Errorf("load roadmap: %w", err)
	}

	for _, raw := range cmd.cycles {
		index, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid --cycle value %q: must be an integer", raw)
		}
		if err := tracker.CycleStatus(index); err != nil {
			return fmt.Errorf("cycle milestone: %w", err)
		}
	}

	if cmd.jsonOutput {
		return iojson.Write(c.Root().Writer, roadmapOutput{
			Milestones: tracker.Milestones(),
			Progress:   tracker.ProgressSummary(),
		})
	}

	writeMilestoneTable(c.Root().Writer, tracker.Milestones(), tracker.ProgressSummary())
	return nil
}
