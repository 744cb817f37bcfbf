package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sleuren/sleurencli/internal/core/domain"
	"github.com/sleuren/sleurencli/internal/telemetry/logger"
)

// State is the fetch state of a Collection.
type State int

const (
	Unfetched State = iota
	Fetching
	Fetched
	FetchFailed
)

func (s State) String() string {
	switch s {
	case Unfetched:
		return "unfetched"
	case Fetching:
		return "fetching"
	case Fetched:
		return "fetched"
	case FetchFailed:
		return "fetch_failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Collection is the one-shot cache of a resource kind. Once Fetched it
// is never requested again; a failed fetch is retried on the next call.
type Collection struct {
	schema    Schema
	transport Transport

	state   State
	records []Record
	raw     json.RawMessage
}

// NewCollection creates an unfetched collection.
func NewCollection(schema Schema, transport Transport) *Collection {
	return &Collection{
		schema:    schema,
		transport: transport,
	}
}

// State returns the current fetch state.
func (c *Collection) State() State {
	return c.state
}

// Records returns the fetched records. The slice is a copy.
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Raw returns the collection array exactly as received.
func (c *Collection) Raw() json.RawMessage {
	return c.raw
}

// Fetch loads the collection unless it is already Fetched.
func (c *Collection) Fetch(ctx context.Context) error {
	if c.state == Fetched {
		return nil
	}

	prev := c.state
	c.state = Fetching

	body, err := c.transport.Get(ctx, c.schema.Path)
	if err != nil {
		if errors.Is(err, domain.ErrAuthMissing) {
			c.state = prev
			return err
		}
		c.fail()
		return fmt.Errorf("fetch %s: %w", c.schema.Kind, err)
	}

	raw, records, err := decodeCollection(body, c.schema)
	if err != nil {
		c.fail()
		return fmt.Errorf("fetch %s: %w", c.schema.Kind, err)
	}

	c.raw = raw
	c.records = records
	c.state = Fetched

	logger.L(ctx).Debug("collection fetched", "kind", c.schema.Kind, "records", len(records))
	return nil
}

func (c *Collection) fail() {
	c.records = nil
	c.raw = nil
	c.state = FetchFailed
}

// decodeCollection extracts schema.Key from a response body.
func decodeCollection(body []byte, schema Schema) (json.RawMessage, []Record, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, nil, domain.ErrDataShape.WithCause(err)
	}

	raw, ok := envelope[schema.Key]
	if !ok {
		return nil, nil, domain.ErrDataShape.WithDetails(fmt.Sprintf("response has no %q key", schema.Key))
	}

	if schema.AllowObject && len(raw) > 0 && raw[0] == '{' {
		raw = append(append(json.RawMessage{'['}, raw...), ']')
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, domain.ErrDataShape.WithDetails(fmt.Sprintf("%q is not a list of objects", schema.Key)).WithCause(err)
	}
	if records == nil {
		return nil, nil, domain.ErrDataShape.WithDetails(fmt.Sprintf("%q is null", schema.Key))
	}

	return raw, records, nil
}
