package service

import (
	"context"
	"fmt"
	"io"

	"github.com/sleuren/sleurencli/internal/core/resource"
	"github.com/sleuren/sleurencli/internal/telemetry/logger"
)

// TokenPlaceholder stands in for the project token when none exists yet.
const TokenPlaceholder = "[YOUR_PROJECT_TOKEN]"

// ServerService manages monitored servers.
type ServerService struct {
	pipeline *resource.Pipeline
}

// NewServerService creates a server service over transport.
func NewServerService(transport resource.Transport, readonly bool) *ServerService {
	return &ServerService{
		pipeline: resource.New(ServerSchema, transport, resource.WithReadonly(readonly)),
	}
}

// List prints the servers selected by q.
func (s *ServerService) List(ctx context.Context, w io.Writer, q resource.Query, opts resource.RenderOptions) error {
	return s.pipeline.List(ctx, w, q, opts)
}

// UpdateTags replaces the tags of the servers matching id, or name when
// id is empty.
func (s *ServerService) UpdateTags(ctx context.Context, id, name string, tags []string) (int, error) {
	return s.pipeline.Mutator().UpdateTags(ctx, id, name, tags)
}

// AddInstructions prints the agent install command. The first token is
// used; without one, the user is told how to create it.
func (s *ServerService) AddInstructions(ctx context.Context, w io.Writer, tokens *TokenService) {
	token, err := tokens.First(ctx)
	if err != nil {
		logger.L(ctx).Warn("could not look up a project token", "error", err)
	}

	if token == "" {
		fmt.Fprintln(w, "First create a user token by executing:")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "sleurencli tokens create")
		fmt.Fprintln(w, "sleurencli tokens list")
		fmt.Fprintln(w)
		token = TokenPlaceholder
	}

	fmt.Fprintln(w, "Please login via SSH to each of the servers you would like to add and execute the following command:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "wget -q -N sleuren.com/sleuren.sh && bash sleuren.sh", token)
}

// RemoveInstructions prints how to remove a server. Removal happens on
// the host, so no request is made.
func (s *ServerService) RemoveInstructions(w io.Writer) {
	fmt.Fprintln(w, "Please login via SSH to each of the servers you would like to remove.")
	fmt.Fprintln(w, `First stop the monitoring agent by running "service sleuren stop" then run "pip3 uninstall sleuren". After 15 minutes you are able to remove the server.`)
}
