package service

import (
	"context"
	"io"

	"github.com/sleuren/sleurencli/internal/core/resource"
)

// TokenService manages API tokens.
type TokenService struct {
	pipeline *resource.Pipeline
}

// NewTokenService creates a token service over transport.
func NewTokenService(transport resource.Transport, readonly bool) *TokenService {
	return &TokenService{
		pipeline: resource.New(TokenSchema, transport, resource.WithReadonly(readonly)),
	}
}

// List prints the tokens. A non-empty token selects that token only.
func (s *TokenService) List(ctx context.Context, w io.Writer, token string, opts resource.RenderOptions) error {
	q := resource.Query{Criteria: resource.Criteria{ID: token}}
	return s.pipeline.List(ctx, w, q, opts)
}

// Create asks the service for a new token.
func (s *TokenService) Create(ctx context.Context) error {
	_, err := s.pipeline.Mutator().Create(ctx)
	return err
}

// First returns the first token, or "" when there is none.
func (s *TokenService) First(ctx context.Context) (string, error) {
	if err := s.pipeline.Collection().Fetch(ctx); err != nil {
		return "", err
	}
	records := s.pipeline.Collection().Records()
	if len(records) == 0 {
		return "", nil
	}
	return records[0].Text("token"), nil
}
