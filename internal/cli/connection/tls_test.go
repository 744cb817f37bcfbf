package connection

import (
	"context"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sleuren/sleurencli/internal/core/domain"
	"github.com/sleuren/sleurencli/internal/infra/tlsroots"
)

func TestHTTPClient_WithRootCAs(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tokens":[]}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "ca.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: server.Certificate().Raw})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("untrusted", func(t *testing.T) {
		_, err := NewHTTPClient(testConfig(server.URL)).Get(context.Background(), "token")
		if !errors.Is(err, domain.ErrTransport) {
			t.Fatalf("err = %v, want ErrTransport", err)
		}
	})

	t.Run("trusted", func(t *testing.T) {
		pool, err := tlsroots.Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		m := NewManager(testConfig(server.URL), nil, WithRootCAs(pool))
		body, err := m.Client().Get(context.Background(), "token")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(body) != `{"tokens":[]}` {
			t.Errorf("body = %q", body)
		}
	})
}
