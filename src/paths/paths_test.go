package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func forceLinux(t *testing.T) {
	t.Helper()
	old := goos
	goos = "linux"
	t.Cleanup(func() { goos = old })
}

func TestDirsUseXDG(t *testing.T) {
	forceLinux(t)

	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ConfigDir", ConfigDir(), filepath.Join(base, "cfg", "searchconv")},
		{"DataDir", DataDir(), filepath.Join(base, "data", "searchconv")},
		{"LogDir", LogDir(), filepath.Join(base, "state", "searchconv")},
		{"ConfigFile", ConfigFile(), filepath.Join(base, "cfg", "searchconv", "config.yml")},
		{"DatabaseFile", DatabaseFile(), filepath.Join(base, "data", "searchconv", "searchconv.db")},
		{"LogFile", LogFile(), filepath.Join(base, "state", "searchconv", "searchconv.log")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestRelativeXDGIgnored(t *testing.T) {
	forceLinux(t)
	t.Setenv("XDG_CONFIG_HOME", "relative/dir")

	home, _ := os.UserHomeDir()
	if got, want := ConfigDir(), filepath.Join(home, ".config", "searchconv"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in   string
		want string
	}{
		{"~/x/y.yml", filepath.Join(home, "x", "y.yml")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"rel", "rel"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveConfigPath(t *testing.T) {
	forceLinux(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "searchconv")

	if got := ResolveConfigPath(""); got != filepath.Join(cfgDir, "config.yml") {
		t.Errorf("ResolveConfigPath(\"\") = %q", got)
	}
	if got := ResolveConfigPath("work"); got != filepath.Join(cfgDir, "work.yml") {
		t.Errorf("ResolveConfigPath(work) = %q", got)
	}

	os.MkdirAll(cfgDir, 0700)
	os.WriteFile(filepath.Join(cfgDir, "home.yaml"), []byte("x: 1\n"), 0600)
	if got := ResolveConfigPath("home"); got != filepath.Join(cfgDir, "home.yaml") {
		t.Errorf("ResolveConfigPath(home) = %q, want existing .yaml", got)
	}

	abs := filepath.Join(dir, "elsewhere.yml")
	if got := ResolveConfigPath(abs); got != abs {
		t.Errorf("ResolveConfigPath(abs) = %q", got)
	}
}

func TestEnsureParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "file.log")
	if err := EnsureParent(p); err != nil {
		t.Fatalf("EnsureParent() error = %v", err)
	}
	if info, err := os.Stat(filepath.Dir(p)); err != nil || !info.IsDir() {
		t.Errorf("parent not created: %v", err)
	}
}
