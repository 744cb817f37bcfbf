package resource

import (
	"context"
	"fmt"
	"io"
)

// Query is one list request.
type Query struct {
	Criteria Criteria
	Sort     SortSpec
	Limit    int
}

// Pipeline runs fetch, filter, sort, limit and render for one kind.
type Pipeline struct {
	schema     Schema
	collection *Collection
	mutator    *Mutator
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithReadonly blocks every mutation of the pipeline.
func WithReadonly(readonly bool) Option {
	return func(p *Pipeline) {
		p.mutator.readonly = readonly
	}
}

// New creates a pipeline for schema over transport.
func New(schema Schema, transport Transport, opts ...Option) *Pipeline {
	coll := NewCollection(schema, transport)
	p := &Pipeline{
		schema:     schema,
		collection: coll,
		mutator: &Mutator{
			schema:     schema,
			transport:  transport,
			collection: coll,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Schema returns the kind this pipeline serves.
func (p *Pipeline) Schema() Schema {
	return p.schema
}

// Collection returns the pipeline's cache.
func (p *Pipeline) Collection() *Collection {
	return p.collection
}

// Mutator returns the write side of the pipeline.
func (p *Pipeline) Mutator() *Mutator {
	return p.mutator
}

// Select fetches the collection (once) and applies q.
func (p *Pipeline) Select(ctx context.Context, q Query) (View, error) {
	if q.Limit < 0 {
		return View{}, fmt.Errorf("limit must not be negative, got %d", q.Limit)
	}

	if err := p.collection.Fetch(ctx); err != nil {
		return View{}, err
	}

	records := Filter(p.schema, p.collection.Records(), q.Criteria)
	records = Sort(records, q.Sort)
	records = Limit(records, q.Limit)

	return View{
		Schema:   p.schema,
		Criteria: q.Criteria,
		Records:  records,
		Raw:      p.collection.Raw(),
	}, nil
}

// List selects and renders in one step.
func (p *Pipeline) List(ctx context.Context, w io.Writer, q Query, opts RenderOptions) error {
	view, err := p.Select(ctx, q)
	if err != nil {
		return err
	}
	return Render(w, view, opts)
}
