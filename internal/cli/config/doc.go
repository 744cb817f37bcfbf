// Package config provides the session configuration for sleurencli.
//
// This package defines the CLI configuration:
//
//   - spec.go: Config struct (~/.sleuren/sleuren.yaml), request headers and params
//   - loader.go: loading, merging and saving through confloader
//
// The session config lives for one process. It is read-shared by every
// resource pipeline and only written back by "config save".
package config
