package service

import (
	"context"
	"io"

	"github.com/sleuren/sleurencli/internal/core/resource"
)

// StatisticsService shows the aggregate statistics view.
type StatisticsService struct {
	pipeline *resource.Pipeline
}

// NewStatisticsService creates a statistics service over transport.
func NewStatisticsService(transport resource.Transport) *StatisticsService {
	return &StatisticsService{
		pipeline: resource.New(StatisticsSchema, transport, resource.WithReadonly(true)),
	}
}

// Show fetches and prints the statistics. There is no selection stage.
func (s *StatisticsService) Show(ctx context.Context, w io.Writer, opts resource.RenderOptions) error {
	return s.pipeline.List(ctx, w, resource.Query{}, opts)
}
