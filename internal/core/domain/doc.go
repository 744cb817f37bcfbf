// Package domain defines the core domain models for sleurencli.
//
// The package is free of IO and holds:
//
//   - Errors: the client error taxonomy (auth, transport, data shape,
//     read-only, missing target) and its mapping to process exit codes
package domain
