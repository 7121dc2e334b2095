package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/placementpal/internal/core/logging"
	"github.com/colonyops/placementpal/internal/core/styles"
	"github.com/colonyops/placementpal/internal/placement"
	"github.com/colonyops/placementpal/pkg/iojson"
)

type ExperiencesCmd struct {
	flags *Flags

	// flags
	company    string
	jsonOutput bool
}

// NewExperiencesCmd creates a new experiences command
func NewExperiencesCmd(flags *Flags) *ExperiencesCmd {
	return &ExperiencesCmd{flags: flags}
}

// Register adds the experiences command to the application
func (cmd *ExperiencesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "experiences",
		Aliases:   []string{"exp"},
		Usage:     "Read interview experiences shared by past candidates",
		UsageText: "placementpal experiences [--company C] [--json]",
		Description: `Shows curated interview experiences for a company: the candidate profile,
the rounds they went through, the questions asked, the verdict and their tips.

Only companies listed under experiences.companies in the config are available.
When --company is omitted an interactive form asks for one.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "company",
				Usage:       "company to show experiences for",
				Destination: &cmd.company,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output experiences as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExperiencesCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "experiences")

	company, err := cmd.resolveCompany(!cmd.jsonOutput && isInteractive())
	if err != nil {
		if errors.Is(err, errAborted) {
			return nil
		}
		return err
	}

	experiences, err := cmd.flags.Client.Experiences(ctx, company)
	if err != nil {
		return fmt.Errorf("fetch experiences: %w", err)
	}

	if cmd.jsonOutput {
		return iojson.Write(c.Root().Writer, struct {
			Company     string                 `json:"company"`
			Experiences []placement.Experience `json:"experiences"`
		}{
			Company:     company,
			Experiences: experiences,
		})
	}

	writeExperiences(c.Root().Writer, company, experiences)
	return nil
}

// resolveCompany returns the canonical name of the requested company from the
// configured experiences list.
func (cmd *ExperiencesCmd) resolveCompany(interactive bool) (string, error) {
	available := cmd.flags.Config.Experiences.Companies
	if len(available) == 0 {
		return "", fmt.Errorf("no companies configured under experiences.companies")
	}

	if cmd.company == "" {
		if !interactive {
			return "", fmt.Errorf("--company is required (one of %v)", available)
		}

		selected := available[0]
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Company").
					Options(huh.NewOptions(available...)...).
					Value(&selected),
			),
		).WithTheme(styles.FormTheme()).Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return "", errAborted
			}
			return "", fmt.Errorf("form: %w", err)
		}
		return selected, nil
	}

	for _, name := range available {
		if strings.EqualFold(name, strings.TrimSpace(cmd.company)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("no experiences for %q (available: %s)", cmd.company, strings.Join(available, ", "))
}

func writeExperiences(out io.Writer, company string, experiences []placement.Experience) {
	_, _ = fmt.Fprintln(out, styles.HeaderStyle.Render(company+" interview experiences"))
	_, _ = fmt.Fprintln(out)

	if len(experiences) == 0 {
		_, _ = fmt.Fprintln(out, styles.SubtleStyle.Render("No experiences shared yet."))
		return
	}

	for i, e := range experiences {
		if i > 0 {
			_, _ = fmt.Fprintln(out, styles.DividerStyle.Render(strings.Repeat("─", 40)))
		}

		verdict := styles.ErrorStyle.Render(e.Verdict)
		if e.Selected() {
			verdict = styles.SuccessStyle.Render(e.Verdict)
		}

		_, _ = fmt.Fprintf(out, "%s  %s\n", styles.LabelStyle.Render(e.Role), verdict)
		_, _ = fmt.Fprintln(out, styles.SubtleStyle.Render(e.CandidateProfile))
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Rounds:")
		_, _ = fmt.Fprint(out, bulletList(e.Rounds))
		_, _ = fmt.Fprintln(out, "Questions asked:")
		_, _ = fmt.Fprint(out, bulletList(e.QuestionsAsked))
		if e.Tips != "" {
			_, _ = fmt.Fprintf(out, "Tip: %s\n", e.Tips)
		}
		_, _ = fmt.Fprintln(out)
	}
}
