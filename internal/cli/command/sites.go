package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sleuren/sleurencli/internal/cli/output"
	"github.com/sleuren/sleurencli/internal/core/domain"
	"github.com/sleuren/sleurencli/internal/core/service"
)

// SitesCommand returns the sites subcommand group.
func SitesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sites",
		Usage: "Monitored sites",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a site, or every site listed in a file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "site url"},
					&cli.StringFlag{Name: "name", Usage: "display name"},
					&cli.StringFlag{Name: "protocol", Usage: "scheme for urls given without one", Value: service.DefaultProtocol},
					&cli.BoolFlag{Name: "force", Usage: "add even if the url is already monitored"},
					&cli.StringFlag{Name: "file", Usage: "file with one url per line"},
				},
				Action: sitesAdd,
			},
			{
				Name:   "list",
				Usage:  "List sites",
				Flags:  listFlags(),
				Action: sitesList,
			},
			{
				Name:   "remove",
				Usage:  "Show how to remove sites",
				Flags:  selectionFlags(),
				Action: sitesRemove,
			},
		},
	}
}

func sitesAdd(c *cli.Context) error {
	mgr, ctx, err := session(c)
	if err != nil {
		return err
	}
	s := service.NewSiteService(mgr.Client(), mgr.Config().Readonly)

	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open site list: %w", err)
		}
		defer f.Close()

		summary, err := s.AddFile(ctx, f, c.String("protocol"), c.App.ErrWriter)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "Added %d site(s), skipped %d, failed %d\n", summary.Added, summary.Skipped, len(summary.Failures))
		for _, fail := range summary.Failures {
			fmt.Fprintf(c.App.ErrWriter, "  %s: %v\n", fail.URL, fail.Err)
		}
		if len(summary.Failures) > 0 {
			return fmt.Errorf("%d site(s) could not be added: %w", len(summary.Failures), summary.Failures[0].Err)
		}
		return nil
	}

	if c.String("url") == "" {
		return domain.ErrNoTarget.WithDetails("specify a site with --url or a list with --file")
	}

	in := service.SiteInput{
		URL:      c.String("url"),
		Name:     c.String("name"),
		Protocol: c.String("protocol"),
		Force:    c.Bool("force"),
	}
	added, err := s.Add(ctx, in)
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintf(c.App.Writer, "Site %s is already monitored, use --force to add it anyway\n", in.NormalizedURL())
		return nil
	}

	fmt.Fprintf(c.App.Writer, "Added site %s\n", in.NormalizedURL())
	return nil
}

func sitesList(c *cli.Context) error {
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

	return service.NewSiteService(mgr.Client(), mgr.Config().Readonly).List(ctx, c.App.Writer, q, opts)
}

func sitesRemove(c *cli.Context) error {
	mgr, _, err := session(c)
	if err != nil {
		return err
	}

	service.NewSiteService(mgr.Client(), mgr.Config().Readonly).RemoveInstructions(c.App.Writer, criteria(c))
	return nil
}

