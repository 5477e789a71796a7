// Package paths resolves per-user config, data and log locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const projectName = "searchconv"

// goos is used for testing - allows overriding runtime.GOOS
var goos = runtime.GOOS

// ConfigDir returns the per-user config directory.
// Linux/BSD: $XDG_CONFIG_HOME/searchconv or ~/.config/searchconv
// Windows: %APPDATA%\searchconv
func ConfigDir() string {
	if goos == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), projectName)
	}
	return filepath.Join(xdg("XDG_CONFIG_HOME", ".config"), projectName)
}

// DataDir returns the per-user data directory.
// Linux/BSD: $XDG_DATA_HOME/searchconv or ~/.local/share/searchconv
// Windows: %LOCALAPPDATA%\searchconv\data
func DataDir() string {
	if goos == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectName, "data")
	}
	return filepath.Join(xdg("XDG_DATA_HOME", filepath.Join(".local", "share")), projectName)
}

// LogDir returns the per-user log directory.
// Linux/BSD: $XDG_STATE_HOME/searchconv or ~/.local/state/searchconv
// Windows: %LOCALAPPDATA%\searchconv\log
func LogDir() string {
	if goos == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectName, "log")
	}
	return filepath.Join(xdg("XDG_STATE_HOME", filepath.Join(".local", "state")), projectName)
}

func xdg(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, fallback)
}

// ConfigFile returns the default config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yml")
}

// DatabaseFile returns the default SQLite database path
func DatabaseFile() string {
	return filepath.Join(DataDir(), projectName+".db")
}

// LogFile returns the default log file path
func LogFile() string {
	return filepath.Join(LogDir(), projectName+".log")
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// EnsureParent creates the parent directory of path.
func EnsureParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	return nil
}

// ResolveConfigPath resolves the --config flag value.
// Empty uses ConfigFile(). Relative names resolve inside ConfigDir() and
// get a .yml extension when they have none.
func ResolveConfigPath(configFlag string) string {
	if configFlag == "" {
		return ConfigFile()
	}

	configFlag = ExpandHome(configFlag)
	if !filepath.IsAbs(configFlag) {
		configFlag = filepath.Join(ConfigDir(), configFlag)
	}
	return addExtIfNeeded(configFlag)
}

// addExtIfNeeded prefers an existing .yml, then .yaml, then defaults to .yml
func addExtIfNeeded(path string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	for _, ext := range []string{".yml", ".yaml"} {
		if _, err := os.Stat(path + ext); err == nil {
			return path + ext
		}
	}
	return path + ".yml"
}
