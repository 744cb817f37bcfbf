package command

import (
	"github.com/urfave/cli/v2"

	"github.com/sleuren/sleurencli/internal/cli/output"
	"github.com/sleuren/sleurencli/internal/core/service"
)

// StatisticsCommand returns the statistics command.
func StatisticsCommand() *cli.Command {
	return &cli.Command{
		Name:   "statistics",
		Usage:  "Show aggregate statistics",
		Flags:  outputFlags(output.FormatCSV, output.FormatTable),
		Action: statistics,
	}
}

func statistics(c *cli.Context) error {
	mgr, ctx, err := session(c)
	if err != nil {
		return err
	}

	opts, err := renderOptions(c, mgr.Config().HideIDs, output.FormatCSV, output.FormatTable)
	if err != nil {
		return err
	}

	return service.NewStatisticsService(mgr.Client()).Show(ctx, c.App.Writer, opts)
}
