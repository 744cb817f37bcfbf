// Package service provides the per-kind services of sleurencli.
//
// Each service wraps a resource.Pipeline configured with the kind's
// schema and adds what is specific to that kind:
//
//   - ServerService: list, tag update, agent install and removal instructions
//   - SiteService: list, add (single or from a file), removal instructions
//   - TokenService: list, create, first token lookup
//   - StatisticsService: aggregate statistics view
package service
