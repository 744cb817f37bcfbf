// Package metric provides Prometheus metrics for sleurencli.
//
// The CLI keeps a private, per-process registry instead of exposing
// /metrics: the transport records one sample per request and debug mode
// prints a summary when the command ends.
package metric
