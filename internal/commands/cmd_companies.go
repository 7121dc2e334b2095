package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/placementpal/pkg/iojson"
)

type CompaniesCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewCompaniesCmd creates a new companies command
func NewCompaniesCmd(flags *Flags) *CompaniesCmd {
	return &CompaniesCmd{flags: flags}
}

// Register adds the companies command to the application
func (cmd *CompaniesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "companies",
		Usage:     "List target companies and their roles",
		UsageText: "placementpal companies [--json]",
		Description: `Displays the company catalog used by roadmap, skills and ats.

The first role listed for each company is used when --role is omitted.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the catalog as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CompaniesCmd) run(_ context.Context, c *cli.Command) error {
	entries := cmd.flags.Config.Companies().Entries()

	if cmd.jsonOutput {
		return iojson.Write(c.Root().Writer, entries)
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "COMPANY\tROLES")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", e.Company, strings.Join(e.Roles, ", "))
	}
	return w.Flush()
}
