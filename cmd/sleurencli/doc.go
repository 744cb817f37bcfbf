// Package main provides the entry point for sleurencli.
//
// The CLI gives command-line access to the Sleuren monitoring service:
//
//   - Servers (list, update tags, agent install instructions)
//   - Sites (list, add one or many from a file)
//   - API tokens and account statistics
//   - Settings (print, save)
//
// Usage:
//
//	sleurencli [global flags] command [flags]
//	sleurencli servers list --issues --sort cpu --reverse
//	sleurencli sites add --file sites.txt
package main
