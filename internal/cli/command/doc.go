// Package command provides CLI command definitions for sleurencli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, session setup
//   - flags.go: listing flags shared by list commands
//   - config.go: config print/save
//   - browser.go: dashboard and signup
//   - servers.go, sites.go, tokens.go, statistics.go: resource commands
//
// Commands parse flags, call the matching service from
// internal/core/service and write to the App's writers.
package command
