package resource

import (
	"context"
	"fmt"

	"github.com/sleuren/sleurencli/internal/core/domain"
	"github.com/sleuren/sleurencli/internal/telemetry/logger"
)

// Mutator issues the write operations of one kind. Every operation
// checks read-only mode before touching the transport.
type Mutator struct {
	schema     Schema
	transport  Transport
	collection *Collection
	readonly   bool
}

// Guard fails with ErrReadOnly in read-only mode. Callers that read
// before writing check it first so nothing is sent.
func (m *Mutator) Guard(op string) error {
	if m.readonly {
		return domain.ErrReadOnly.WithDetails(op + " " + m.schema.Path)
	}
	return nil
}

// Create issues POST {path} with no body.
func (m *Mutator) Create(ctx context.Context) ([]byte, error) {
	return m.Add(ctx, nil)
}

// Add issues POST {path} with body. A nil body sends none.
func (m *Mutator) Add(ctx context.Context, body any) ([]byte, error) {
	if err := m.Guard("create"); err != nil {
		return nil, err
	}

	data, err := m.transport.Post(ctx, m.schema.Path, body)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", m.schema.Path, err)
	}
	return data, nil
}

// UpdateTags replaces the tags of every record whose id or name equals
// the target. The target is id when set, else name. It returns the
// number of records updated.
func (m *Mutator) UpdateTags(ctx context.Context, id, name string, tags []string) (int, error) {
	if err := m.Guard("update"); err != nil {
		return 0, err
	}

	target := id
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, domain.ErrNoTarget.WithDetails("--id or --name is required")
	}

	if err := m.collection.Fetch(ctx); err != nil {
		return 0, err
	}

	if tags == nil {
		tags = []string{}
	}
	payload := map[string][]string{"tags": tags}

	updated := 0
	for _, r := range m.collection.Records() {
		if r.Text("id") != target && r.Text("name") != target {
			continue
		}

		path := m.schema.Path + "/" + r.Text("id")
		if _, err := m.transport.Put(ctx, path, payload); err != nil {
			return updated, fmt.Errorf("update %s: %w", path, err)
		}
		logger.L(ctx).Debug("tags updated", "kind", m.schema.Kind, "id", r.Text("id"), "tags", tags)
		updated++
	}

	if updated == 0 {
		return 0, domain.ErrNoTarget.WithDetails(fmt.Sprintf("no %s matches %q", m.schema.Kind, target))
	}
	return updated, nil
}
