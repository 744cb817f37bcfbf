package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default config", DefaultConfig(), false},
		{"json format", Config{Level: "info", Format: "json"}, false},
		{"empty level and format", Config{}, false},
		{"warning alias", Config{Level: "WARNING"}, false},
		{"unknown format", Config{Level: "info", Format: "console"}, true},
		{"unknown level", Config{Level: "verbose"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && l == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		level   string
		logFunc func(string, ...any)
	}{
		{"DEBUG", l.Debug},
		{"INFO", l.Info},
		{"WARN", l.Warn},
		{"ERROR", l.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.logFunc("request", "method", "GET")

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("Failed to parse JSON log %q: %v", buf.String(), err)
			}
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["msg"] != "request" || entry["method"] != "GET" {
				t.Errorf("entry = %v", entry)
			}
		})
	}
}

func TestLogger_LevelsAreIndependent(t *testing.T) {
	var quiet, loud bytes.Buffer
	q, _ := New(Config{Level: "warn", Output: &quiet})
	l, _ := New(Config{Level: "debug", Output: &loud})

	q.Info("hidden")
	l.Debug("shown")

	if quiet.Len() != 0 {
		t.Errorf("warn logger wrote info: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") {
		t.Errorf("debug logger output = %q", loud.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	l.With("kind", "servers").Info("collection fetched")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["kind"] != "servers" {
		t.Errorf("kind = %v, want servers", entry["kind"])
	}
}

func TestLogger_RedactsSensitiveKeys(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Output: &buf})

	l.Info("session ready", "api_key", "abcdefghijklmnop", "endpoint", "https://sleuren.com/api/v1/")

	out := buf.String()
	if strings.Contains(out, "abcdefghijklmnop") {
		t.Errorf("api key leaked: %s", out)
	}
	if !strings.Contains(out, "endpoint=https://sleuren.com/api/v1/") {
		t.Errorf("non-sensitive attr missing: %s", out)
	}
}

func TestSessionConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer

	debug := SessionConfig(true, &stdout, &stderr)
	if debug.Level != "debug" || debug.Output != &stdout {
		t.Errorf("debug config = %+v", debug)
	}

	quiet := SessionConfig(false, &stdout, &stderr)
	if quiet.Level != "warn" || quiet.Output != &stderr {
		t.Errorf("quiet config = %+v", quiet)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "warn" || cfg.Format != "text" || cfg.Output != os.Stderr {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	l, _ := New(Config{Level: "debug", Output: &buf})
	SetDefault(l)

	L(context.Background()).Debug("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not replaced: %q", buf.String())
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Output: &buf})

	l.WithContext(context.Background()).Info("test message")
	if buf.Len() == 0 {
		t.Error("Expected log output")
	}
}
