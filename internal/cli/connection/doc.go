// Package connection provides the transport between sleurencli and the
// monitoring service.
//
//   - http.go: authenticated HTTP client with request tracing, metrics
//     an optional rate limit and custom root CAs
//   - manager.go: per-process session holder (config, client, metrics)
package connection
