package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fifteen/internal/puzzle"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default invalid: %v", err)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", "rules:\n  adjacency: naive\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	rule, err := cfg.Rule()
	if err != nil || rule != puzzle.Naive {
		t.Errorf("Rule() = %v, %v; want naive", rule, err)
	}
	if cfg.Unit() != time.Second {
		t.Errorf("Unit() = %v, want 1s from defaults", cfg.Unit())
	}
	if cfg.Storage.Path != Default().Storage.Path {
		t.Errorf("Storage.Path = %q, want default", cfg.Storage.Path)
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown rule", "rules:\n  adjacency: diagonal\n"},
		{"zero unit", "timer:\n  unit_ms: 0\n"},
		{"bad level", "log:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "bad.yaml", tt.body)
			if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestLoadCustomMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "broken.yaml", "timer: [unit_ms\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".fifteen", "config.yaml"), "timer:\n  unit_ms: 250\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Unit() != 250*time.Millisecond {
		t.Errorf("Unit() = %v, want 250ms", cfg.Unit())
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".fifteen", "config.yaml"), "rules:\n  adjacency: sideways\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.fifteen/results.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".fifteen", "results.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
