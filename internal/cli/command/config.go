package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sleuren/sleurencli/internal/cli/config"
	"github.com/sleuren/sleurencli/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	printCmd := &cli.Command{
		Name:  "print",
		Usage: "Print the effective settings with credentials masked",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format: yaml, table",
				Value:   string(output.FormatYAML),
			},
		},
		Action: configPrint,
	}

	return &cli.Command{
		Name:  "config",
		Usage: "Print or save the settings",
		Subcommands: []*cli.Command{
			printCmd,
			{
				Name:  "save",
				Usage: "Save the effective settings to the settings file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "api-key", Usage: "API key to store"},
				},
				Action: configSave,
			},
		},
		Flags:  printCmd.Flags,
		Action: configPrint,
	}
}

func configPrint(c *cli.Context) error {
	mgr, _, err := session(c)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(c.String("output"), output.FormatYAML, output.FormatTable)
	if err != nil {
		return err
	}

	return output.NewFormatter(format, 0, false).Format(c.App.Writer, mgr.Config().Masked())
}

func configSave(c *cli.Context) error {
	mgr, _, err := session(c)
	if err != nil {
		return err
	}

	cfg := *mgr.Config()
	if key := c.String("api-key"); key != "" {
		cfg.APIKey = key
	}

	path := c.String("config")
	if err := config.Save(&cfg, path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Configuration saved to %s\n", path)
	return nil
}
