package command

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"
)

// mockServer is a fake monitoring service with per-route handlers.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []string
	bodies   map[string][]byte
}

// newMockServer starts a mock server closed with the test.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
		bodies:   make(map[string][]byte),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)

		m.mu.Lock()
		m.requests = append(m.requests, route)
		m.bodies[route] = body
		handler, ok := m.handlers[route]
		m.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// handle registers a handler for "METHOD /path".
func (m *mockServer) handle(route string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[route] = handler
}

// count returns how many requests hit routes with this prefix.
func (m *mockServer) count(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.requests {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

// body returns the last request body sent to route.
func (m *mockServer) body(route string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bodies[route]
}

// rawResponse writes a literal JSON body with the given status.
func rawResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// jsonResponse writes data as JSON with status 200.
func jsonResponse(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(data)
	}
}

// result holds what one CLI run printed and returned.
type result struct {
	stdout string
	stderr string
	err    error
}

// runApp runs the CLI against server with an API key and a settings
// file in a temp dir. global flags go before the command.
func runApp(t *testing.T, server *mockServer, global []string, args ...string) result {
	t.Helper()
	return run(t, server, append([]string{"--api-key", "test-key-123456"}, global...), args...)
}

// run is runApp without the default API key.
func run(t *testing.T, server *mockServer, global []string, args ...string) result {
	t.Helper()

	endpoint := "http://127.0.0.1:1/"
	if server != nil {
		endpoint = server.URL + "/"
	}

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	argv := []string{"sleurencli",
		"--config", filepath.Join(t.TempDir(), "sleuren.yaml"),
		"--endpoint", endpoint,
	}
	argv = append(argv, global...)
	argv = append(argv, args...)

	err := app.Run(argv)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
