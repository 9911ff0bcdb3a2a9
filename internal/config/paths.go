package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "later"

// platformDir holds platform lookups that tests can override.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the directory searched for config.yaml.
//
// Linux:   $XDG_CONFIG_HOME/later (fallback ~/.config/later)
// macOS:   ~/Library/Application Support/later
// Windows: %APPDATA%/later
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// DefaultDataDir returns the directory holding the data file.
//
// Linux:   $XDG_DATA_HOME/later (fallback ~/.local/share/later)
// macOS and Windows: same as the config directory.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	}
	return DefaultConfigDir()
}

func xdgDir(env, fallback string) (string, error) {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appDirName), nil
}
