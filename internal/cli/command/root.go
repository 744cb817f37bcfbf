package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sleuren/sleurencli/internal/cli/config"
	"github.com/sleuren/sleurencli/internal/cli/connection"
	"github.com/sleuren/sleurencli/internal/infra/buildinfo"
	"github.com/sleuren/sleurencli/internal/infra/tlsroots"
	"github.com/sleuren/sleurencli/internal/telemetry/logger"
)

const sessionKey = "session"

// App creates the CLI application.
func App() *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, c.App.Version)
	}

	return &cli.App{
		Name:                 "sleurencli",
		Usage:                "CLI for Sleuren Monitoring",
		Version:              buildinfo.Version,
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			ConfigCommand(),
			DashboardCommand(),
			ServersCommand(),
			SignupCommand(),
			SitesCommand(),
			StatisticsCommand(),
			TokensCommand(),
		},
		Before: before,
		After:  after,
	}
}

// globalFlags returns the global CLI flags. Environment variables are
// read by the config loader, not by the flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "settings file",
			Value:   config.DefaultConfigPath(),
		},
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "API endpoint",
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "API key",
		},
		&cli.StringFlag{
			Name:  "secret",
			Usage: "API secret",
		},
		&cli.BoolFlag{
			Name:  "readonly",
			Usage: "block every create and update",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "trace requests on stdout",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "request timeout",
		},
		&cli.StringFlag{
			Name:  "ca-file",
			Usage: "PEM bundle of extra trusted root certificates",
		},
	}
}

// overrides collects the global flags set on the command line.
func overrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	for flag, key := range map[string]string{
		"endpoint": "endpoint",
		"api-key":  "api_key",
		"secret":   "secret",
		"ca-file":  "ca_file",
	} {
		if c.IsSet(flag) {
			m[key] = c.String(flag)
		}
	}
	for _, flag := range []string{"readonly", "debug"} {
		if c.IsSet(flag) {
			m[flag] = c.Bool(flag)
		}
	}
	if c.IsSet("timeout") {
		m["timeout"] = c.Duration("timeout").String()
	}
	return m
}

func before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), overrides(c))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.SessionConfig(cfg.Debug, c.App.Writer, c.App.ErrWriter))
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	var opts []connection.Option
	if cfg.CAFile != "" {
		pool, err := tlsroots.Load(cfg.CAFile)
		if err != nil {
			return fmt.Errorf("load ca file: %w", err)
		}
		log.Debug("ca file loaded", "path", cfg.CAFile, "certs", pool.Added())
		opts = append(opts, connection.WithRootCAs(pool))
	}
	c.App.Metadata[sessionKey] = connection.NewManager(cfg, log, opts...)

	log.Debug("session ready", "endpoint", cfg.Endpoint, "readonly", cfg.Readonly, "config", c.String("config"))
	return nil
}

func after(c *cli.Context) error {
	if mgr := GetSession(c); mgr != nil && mgr.Config().Debug {
		mgr.Logger().Debug("session finished", "requests", mgr.Metrics().Total())
	}
	return nil
}

// GetSession retrieves the session manager from context.
func GetSession(c *cli.Context) *connection.Manager {
	if mgr, ok := c.App.Metadata[sessionKey].(*connection.Manager); ok {
		return mgr
	}
	return nil
}

// session returns the session manager and a context carrying its logger.
func session(c *cli.Context) (*connection.Manager, context.Context, error) {
	mgr := GetSession(c)
	if mgr == nil {
		return nil, nil, fmt.Errorf("session not initialized")
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return mgr, logger.WithLogger(ctx, mgr.Logger()), nil
}
