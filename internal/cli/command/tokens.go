package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sleuren/sleurencli/internal/cli/output"
	"github.com/sleuren/sleurencli/internal/core/service"
)

// TokensCommand returns the tokens subcommand group.
func TokensCommand() *cli.Command {
	listFlags := append([]cli.Flag{
		&cli.StringFlag{Name: "token", Usage: "show only this token"},
	}, outputFlags(output.FormatJSON, output.FormatCSV, output.FormatTable)...)

	return &cli.Command{
		Name:  "tokens",
		Usage: "API tokens",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "Create a new token",
				Action: tokensCreate,
			},
			{
				Name:   "list",
				Usage:  "List tokens",
				Flags:  listFlags,
				Action: tokensList,
			},
		},
	}
}

func tokensCreate(c *cli.Context) error {
	mgr, ctx, err := session(c)
	if err != nil {
		return err
	}

	if err := service.NewTokenService(mgr.Client(), mgr.Config().Readonly).Create(ctx); err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, "Created token")
	return nil
}

func tokensList(c *cli.Context) error {
	mgr, ctx, err := session(c)
	if err != nil {
		return err
	}

	opts, err := renderOptions(c, mgr.Config().HideIDs, output.FormatJSON, output.FormatCSV, output.FormatTable)
	if err != nil {
		return err
	}

	return service.NewTokenService(mgr.Client(), mgr.Config().Readonly).List(ctx, c.App.Writer, c.String("token"), opts)
}
