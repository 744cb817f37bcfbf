// Package buildinfo provides build information for sleurencli.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// Usage:
//
//	go build -ldflags "-X github.com/sleuren/sleurencli/internal/infra/buildinfo.Version=1.0.0"
package buildinfo
