package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sleuren/sleurencli/internal/core/domain"
)

type call struct {
	method string
	path   string
	body   any
}

type reply struct {
	body   string
	status int
	err    error
}

// fakeTransport answers by "METHOD path" and records every call.
type fakeTransport struct {
	replies map[string][]reply
	calls   []call
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{replies: make(map[string][]reply)}
}

// on queues replies for a method and path. The last reply repeats.
func (f *fakeTransport) on(method, path string, replies ...reply) *fakeTransport {
	f.replies[method+" "+path] = append(f.replies[method+" "+path], replies...)
	return f
}

func (f *fakeTransport) do(method, path string, body any) ([]byte, error) {
	f.calls = append(f.calls, call{method: method, path: path, body: body})

	queue := f.replies[method+" "+path]
	if len(queue) == 0 {
		return nil, domain.ErrTransport.WithStatus(http.StatusNotFound)
	}
	r := queue[0]
	if len(queue) > 1 {
		f.replies[method+" "+path] = queue[1:]
	}

	if r.err != nil {
		return nil, r.err
	}
	if r.status != 0 && r.status != http.StatusOK {
		return nil, domain.ErrTransport.WithStatus(r.status)
	}
	return []byte(r.body), nil
}

func (f *fakeTransport) Get(ctx context.Context, path string) ([]byte, error) {
	return f.do(http.MethodGet, path, nil)
}

func (f *fakeTransport) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return f.do(http.MethodPost, path, body)
}

func (f *fakeTransport) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return f.do(http.MethodPut, path, body)
}

func (f *fakeTransport) count(method string) int {
	n := 0
	for _, c := range f.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

var (
	testServers = Schema{
		Kind:      "servers",
		Path:      "server",
		Key:       "servers",
		UniqueKey: "id",
		Columns: []Column{
			{Name: "id", Title: "ID"},
			{Name: "name", Title: "Name"},
			{Name: "tags", Title: "Tags"},
			{Name: "issues", Title: "Issues"},
		},
	}
	testSites = Schema{
		Kind:      "sites",
		Path:      "site",
		Key:       "sites",
		UniqueKey: "id",
		Columns: []Column{
			{Name: "id", Title: "ID"},
			{Name: "url", Title: "URL"},
			{Name: "name", Title: "Name"},
			{Name: "location", Title: "Location"},
			{Name: "issues", Title: "Issues"},
		},
	}
	testTokens = Schema{
		Kind:      "tokens",
		Path:      "token",
		Key:       "tokens",
		UniqueKey: "token",
		Columns:   []Column{{Name: "token", Title: "Token"}},
	}
)

// records decodes a JSON array into records.
func records(t *testing.T, s string) []Record {
	t.Helper()
	var out []Record
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	return out
}

func ids(rs []Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Text("id")
	}
	return out
}
