// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory name used when no override is active.
const DefaultDataDirName = ".grocer-db"

// Environment variable names for overrides.
const (
	EnvConfigDir = "GROCER_CONFIG_DIR"
	EnvDataDir   = "GROCER_DATA_DIR"
	EnvSheetURL  = "GROCER_SHEET_URL"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/grocer (fallback ~/.config/grocer)
// macOS:   ~/Library/Application Support/grocer
// Windows: %APPDATA%/grocer
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "grocer"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "grocer"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "grocer"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > GROCER_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > GROCER_DATA_DIR env > $(CWD)/.grocer-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveSheetURL returns the sheet URL following the precedence chain:
// flag > configYAMLValue > GROCER_SHEET_URL env. Empty means unconfigured;
// the sheets backend rejects that at Attach.
func ResolveSheetURL(flag, configYAMLValue string) string {
	if flag != "" {
		return flag
	}
	if configYAMLValue != "" {
		return configYAMLValue
	}
	return os.Getenv(EnvSheetURL)
}
