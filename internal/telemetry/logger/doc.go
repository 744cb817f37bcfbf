// Package logger provides structured logging for sleurencli.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the default logger
//   - context.go: Context-aware logging with request IDs
//   - redact.go: Credential redaction
//
// In debug mode the CLI routes the logger to stdout at debug level so
// that every request to the monitoring service is traced.
package logger
