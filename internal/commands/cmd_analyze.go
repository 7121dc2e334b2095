package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/placementpal/internal/core/logging"
	"github.com/colonyops/placementpal/internal/core/styles"
	"github.com/colonyops/placementpal/internal/core/validate"
	"github.com/colonyops/placementpal/internal/placement"
	"github.com/colonyops/placementpal/pkg/iojson"
)

// analyzeFlags are shared by the skills and ats commands.
type analyzeFlags struct {
	target     target
	file       string
	jsonOutput bool
}

func (f *analyzeFlags) cliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "resume to analyze (.pdf, .txt or .md)",
			Required:    true,
			Destination: &f.file,
		},
		&cli.StringFlag{
			Name:        "company",
			Usage:       "target company",
			Destination: &f.target.company,
		},
		&cli.StringFlag{
			Name:        "role",
			Usage:       "target role (defaults to the company's first role)",
			Destination: &f.target.role,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output the report as JSON",
			Destination: &f.jsonOutput,
		},
	}
}

// upload resolves the target and validates the resume.
func (f *analyzeFlags) upload(flags *Flags) (placement.Upload, error) {
	if err := f.target.resolve(flags.Config.Companies(), !f.jsonOutput && isInteractive()); err != nil {
		return placement.Upload{}, err
	}

	if err := validate.AnalyzeRequest(f.target.company, f.target.role, f.file); err != nil {
		return placement.Upload{}, err
	}

	return placement.Upload{
		Company: f.target.company,
		Role:    f.target.role,
		Path:    f.file,
	}, nil
}

type SkillsCmd struct {
	flags *Flags
	opts  analyzeFlags
}

// NewSkillsCmd creates a new skills command
func NewSkillsCmd(flags *Flags) *SkillsCmd {
	return &SkillsCmd{flags: flags}
}

// Register adds the skills command to the application
func (cmd *SkillsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "skills",
		Usage:     "Compare resume skills against a target role",
		UsageText: "placementpal skills --file resume.pdf [--company C] [--role R] [--json]",
		Description: `Uploads a resume and reports which skills the target role expects that are
present, which are missing, and how to close each gap.`,
		Flags:  cmd.opts.cliFlags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *SkillsCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "skills")

	up, err := cmd.opts.upload(cmd.flags)
	if err != nil {
		if errors.Is(err, errAborted) {
			return nil
		}
		return err
	}

	report, err := cmd.flags.Client.AnalyzeSkills(ctx, up)
	if err != nil {
		return fmt.Errorf("analyze skills: %w", err)
	}

	if cmd.opts.jsonOutput {
		return iojson.Write(c.Root().Writer, report)
	}

	writeSkillReport(c.Root().Writer, up, report)
	return nil
}

func writeSkillReport(out io.Writer, up placement.Upload, r placement.SkillReport) {
	_, _ = fmt.Fprintln(out, styles.HeaderStyle.Render(fmt.Sprintf("Skill gap: %s %s", up.Company, up.Role)))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, styles.SuccessStyle.Render("Present skills"))
	_, _ = fmt.Fprint(out, bulletList(r.PresentSkills))
	_, _ = fmt.Fprintln(out, styles.ErrorStyle.Render("Missing skills"))
	_, _ = fmt.Fprint(out, bulletList(r.MissingSkills))

	if len(r.Recommendations) > 0 {
		_, _ = fmt.Fprintln(out, styles.LabelStyle.Render("Recommendations"))
		for _, rec := range r.Recommendations {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", rec.Skill, rec.Action)
		}
	}
}

type ATSCmd struct {
	flags *Flags
	opts  analyzeFlags
}

// NewATSCmd creates a new ats command
func NewATSCmd(flags *Flags) *ATSCmd {
	return &ATSCmd{flags: flags}
}

// Register adds the ats command to the application
func (cmd *ATSCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ats",
		Usage:     "Score a resume against applicant tracking systems",
		UsageText: "placementpal ats --file resume.pdf [--company C] [--role R] [--json]",
		Description: `Uploads a resume and reports an ATS compatibility score (0-100) together
with missing keywords, formatting issues and suggestions tailored to the
target company and role.`,
		Flags:  cmd.opts.cliFlags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *ATSCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "ats")

	up, err := cmd.opts.upload(cmd.flags)
	if err != nil {
		if errors.Is(err, errAborted) {
			return nil
		}
		return err
	}

	report, err := cmd.flags.Client.AnalyzeATS(ctx, up)
	if err != nil {
		return fmt.Errorf("analyze resume: %w", err)
	}

	if cmd.opts.jsonOutput {
		return iojson.Write(c.Root().Writer, report)
	}

	writeATSReport(c.Root().Writer, up, report)
	return nil
}

func writeATSReport(out io.Writer, up placement.Upload, r placement.ATSReport) {
	scoreStyle := styles.ErrorStyle
	switch r.Grade() {
	case "strong":
		scoreStyle = styles.SuccessStyle
	case "fair":
		scoreStyle = styles.StatusInProgressStyle
	}

	_, _ = fmt.Fprintln(out, styles.HeaderStyle.Render(fmt.Sprintf("ATS report: %s %s", up.Company, up.Role)))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Score: %s (%s)\n\n", scoreStyle.Render(fmt.Sprintf("%d/100", r.Score)), r.Grade())
	_, _ = fmt.Fprintln(out, styles.LabelStyle.Render("Missing keywords"))
	_, _ = fmt.Fprint(out, bulletList(r.MissingKeywords))
	_, _ = fmt.Fprintln(out, styles.LabelStyle.Render("Formatting issues"))
	_, _ = fmt.Fprint(out, bulletList(r.FormattingIssues))
	_, _ = fmt.Fprintln(out, styles.LabelStyle.Render("Suggestions"))
	_, _ = fmt.Fprint(out, bulletList(r.TailoredSuggestions))
}
