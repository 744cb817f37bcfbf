package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sleuren/sleurencli/internal/cli/output"
	"github.com/sleuren/sleurencli/internal/core/service"
)

// ServersCommand returns the servers subcommand group.
func ServersCommand() *cli.Command {
	return &cli.Command{
		Name:  "servers",
		Usage: "Monitored servers",
		Subcommands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Show how to install the monitoring agent on a server",
				Action: serversAdd,
			},
			{
				Name:   "list",
				Usage:  "List servers",
				Flags:  listFlags(),
				Action: serversList,
			},
			{
				Name:   "remove",
				Usage:  "Show how to remove a server",
				Action: serversRemove,
			},
			{
				Name:  "update",
				Usage: "Replace the tags of a server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "server id"},
					&cli.StringFlag{Name: "name", Usage: "server name, used when --id is not given"},
					&cli.StringSliceFlag{Name: "tag", Usage: "new tag set (replaces all tags)"},
				},
				Action: serversUpdate,
			},
		},
	}
}

func serversAdd(c *cli.Context) error {
	mgr, ctx, err := session(c)
	if err != nil {
		return err
	}

	client := mgr.Client()
	readonly := mgr.Config().Readonly
	service.NewServerService(client, readonly).AddInstructions(ctx, c.App.Writer, service.NewTokenService(client, readonly))
	return nil
}

func serversList(c *cli.Context) error {
	mgr, ctx, err := session(c)
	if err != nil {
		return err
	}

	q, err := query(c)
	if err != nil {
		return err
	}
	opts, err := renderOptions(c, mgr.Config().HideIDs, output.FormatJSON, output.FormatCSV, output.FormatTable)
	if err != nil {
		return err
	}

	return service.NewServerService(mgr.Client(), mgr.Config().Readonly).List(ctx, c.App.Writer, q, opts)
}

func serversRemove(c *cli.Context) error {
	mgr, _, err := session(c)
	if err != nil {
		return err
	}

	service.NewServerService(mgr.Client(), mgr.Config().Readonly).RemoveInstructions(c.App.Writer)
	return nil
}

func serversUpdate(c *cli.Context) error {
	mgr, ctx, err := session(c)
	if err != nil {
		return err
	}

	s := service.NewServerService(mgr.Client(), mgr.Config().Readonly)
	n, err := s.UpdateTags(ctx, c.String("id"), c.String("name"), c.StringSlice("tag"))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Updated tags of %d server(s)\n", n)
	return nil
}
