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
	"github.com/colonyops/placementpal/internal/printer"
)

type ChatCmd struct {
	flags *Flags

	// flags
	raw bool
}

// NewChatCmd creates a new chat command
func NewChatCmd(flags *Flags) *ChatCmd {
	return &ChatCmd{flags: flags}
}

// Register adds the chat command to the application
func (cmd *ChatCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "chat",
		Usage:     "Ask the placement assistant a question",
		UsageText: "placementpal chat [--raw] [message...]",
		Description: `Sends a question to the placement assistant and prints the answer.

With a message the question is sent once. Without one an interactive prompt
keeps asking for questions until an empty message is sent or the prompt is
dismissed with esc or ctrl+c.

Answers are rendered as markdown. Use --raw to print them unformatted.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print responses without markdown rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ChatCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "chat")
	out := c.Root().Writer

	if c.Args().Len() > 0 {
		return cmd.ask(ctx, out, strings.Join(c.Args().Slice(), " "))
	}

	if !isInteractive() {
		return fmt.Errorf("a message is required when not running in a terminal")
	}

	return cmd.loop(ctx, out)
}

func (cmd *ChatCmd) loop(ctx context.Context, out io.Writer) error {
	p := printer.Ctx(ctx)
	p.Header("Placement Pal")
	p.Printf("%s", styles.SubtleStyle.Render("Ask about interview rounds, preparation or companies. Send an empty message to quit."))

	for {
		var message string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("You").
					Placeholder("Ask me anything about placements...").
					Value(&message),
			),
		).WithTheme(styles.FormTheme()).RunWithContext(ctx)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("prompt: %w", err)
		}

		if strings.TrimSpace(message) == "" {
			return nil
		}

		if err := cmd.ask(ctx, out, message); err != nil {
			p.Errorf("%v", err)
		}
	}
}

func (cmd *ChatCmd) ask(ctx context.Context, out io.Writer, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("message is empty")
	}

	reply, err := cmd.flags.Client.Chat(ctx, message)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	if cmd.raw {
		_, err = fmt.Fprintln(out, reply)
		return err
	}

	_, err = fmt.Fprint(out, renderMarkdown(reply, terminalWidth(80)))
	return err
}
