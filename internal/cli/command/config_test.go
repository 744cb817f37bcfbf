package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sleuren/sleurencli/internal/cli/config"
)

func TestConfigCommand(t *testing.T) {
	cmd := ConfigCommand()
	if cmd.Name != "config" {
		t.Errorf("Name = %q, want config", cmd.Name)
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Subcommands {
		names[sub.Name] = true
	}
	for _, want := range []string{"print", "save"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestConfigPrint_MasksCredentials(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bare", []string{"config"}},
		{"yaml", []string{"config", "print"}},
		{"table", []string{"config", "print", "--output", "table"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runApp(t, nil, nil, tt.args...)
			if res.err != nil {
				t.Fatalf("run error = %v", res.err)
			}
			if strings.Contains(res.stdout, "test-key-123456") {
				t.Errorf("api key printed in clear:\n%s", res.stdout)
			}
			if !strings.Contains(res.stdout, "tes...456") {
				t.Errorf("masked key missing:\n%s", res.stdout)
			}
		})
	}
}

func TestConfigPrint_BadFormat(t *testing.T) {
	res := runApp(t, nil, nil, "config", "print", "--output", "json")
	if res.err == nil {
		t.Fatal("expected error for json output")
	}
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sleuren.yaml")

	res := runApp(t, nil, []string{"--config", path, "--readonly"}, "config", "save", "--api-key", "saved-key-0001")
	if res.err != nil {
		t.Fatalf("run error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "Configuration saved to "+path) {
		t.Errorf("stdout = %q", res.stdout)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	cfg, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "saved-key-0001" {
		t.Errorf("APIKey = %q, want saved-key-0001", cfg.APIKey)
	}
	if !cfg.Readonly {
		t.Error("Readonly should be saved from the flag")
	}
}
