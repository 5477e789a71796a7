package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apimgr/searchconv/src/bangs"
	"github.com/apimgr/searchconv/src/model"
	"github.com/apimgr/searchconv/src/store"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Server.Addr() = %q, want 127.0.0.1:8080", cfg.Server.Addr())
	}
	if cfg.Store.Backend != store.BackendSQL {
		t.Errorf("Store.Backend = %q, want sql", cfg.Store.Backend)
	}
	if !strings.HasSuffix(cfg.Database.DSN, "searchconv.db") {
		t.Errorf("Database.DSN = %q, want *.db under the data dir", cfg.Database.DSN)
	}
	if cfg.Output.Format != "plain" || cfg.Output.Color != "auto" {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"backend", func(c *Config) { c.Store.Backend = "etcd" }, "store.backend"},
		{"driver", func(c *Config) { c.Database.Driver = "oracle" }, "database.driver"},
		{"history limit", func(c *Config) { c.History.Limit = 0 }, "history.limit"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"color", func(c *Config) { c.Output.Color = "rainbow" }, "output.color"},
		{"bang", func(c *Config) { c.Bangs = []*bangs.Bang{{Shortcut: "x"}} }, "bangs[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, model.ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateDriverIgnoredWithoutDatabase(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = store.BackendMemory
	cfg.History.Enabled = false
	cfg.Database.Driver = "oracle"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when nothing uses SQL", err)
	}
}

func TestNewViperMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")
	v, got, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper() error = %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `server:
  port: 9090
  read_timeout: 3s
store:
  backend: memory
history:
  enabled: false
output:
  format: json
bangs:
  - shortcut: gh
    engine: github
  - shortcut: so
    engine: stackoverflow
    aliases: [stack]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	v, _, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 3s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want default 10s", cfg.Server.WriteTimeout)
	}
	if cfg.Store.Backend != store.BackendMemory {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want false")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if len(cfg.Bangs) != 2 || cfg.Bangs[1].EngineID != "stackoverflow" || len(cfg.Bangs[1].Aliases) != 1 {
		t.Errorf("Bangs = %+v", cfg.Bangs)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SEARCHCONV_SERVER_PORT", "7070")
	t.Setenv("SEARCHCONV_STORE_BACKEND", "memory")

	v, _, err := NewViper(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Store.Backend != store.BackendMemory {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := NewViper(path); !errors.Is(err, model.ErrInvalidConfig) {
		t.Errorf("NewViper() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadRejectsBadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("output:\n  color: purple\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	v, _, err := NewViper(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(v); !errors.Is(err, model.ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}
