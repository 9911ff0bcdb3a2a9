// Package config loads settings from defaults, an optional config.yaml,
// LATER_* environment variables and flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "LATER"

	KeyDataFile  = "data_file"
	KeyBackend   = "backend"
	KeyPrompt    = "prompt"
	KeyLogEvents = "log_events"
)

// Backend selects the document store.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// PromptMode selects how interactive input is collected.
type PromptMode string

const (
	PromptAuto PromptMode = "auto"
	PromptForm PromptMode = "form"
	PromptLine PromptMode = "line"
)

type Config struct {
	DataFile  string
	Backend   Backend
	Prompt    PromptMode
	LogEvents bool
	// ConfigFile is the config file that was read, or "" when none was found.
	ConfigFile string
}

// Load reads configuration. An explicit configFile must exist; otherwise
// config.yaml in DefaultConfigDir is optional.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyBackend, string(BackendJSON))
	v.SetDefault(KeyPrompt, string(PromptAuto))
	v.SetDefault(KeyLogEvents, false)
	v.SetDefault(KeyDataFile, "")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, fmt.Errorf("finding config directory: %w", err)
		}
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Backend:    Backend(strings.ToLower(v.GetString(KeyBackend))),
		Prompt:     PromptMode(strings.ToLower(v.GetString(KeyPrompt))),
		LogEvents:  v.GetBool(KeyLogEvents),
		ConfigFile: v.ConfigFileUsed(),
	}

	switch cfg.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return nil, fmt.Errorf("config %s: unknown backend %q (want json or sqlite)", KeyBackend, cfg.Backend)
	}
	switch cfg.Prompt {
	case PromptAuto, PromptForm, PromptLine:
	default:
		return nil, fmt.Errorf("config %s: unknown prompt mode %q (want auto, form or line)", KeyPrompt, cfg.Prompt)
	}

	dataFile, err := resolveDataFile(v.GetString(KeyDataFile), cfg.Backend)
	if err != nil {
		return nil, err
	}
	cfg.DataFile = dataFile
	return cfg, nil
}

// resolveDataFile expands ~ in an explicit path or falls back to the
// platform data directory.
func resolveDataFile(value string, backend Backend) (string, error) {
	if value != "" {
		path, err := homedir.Expand(value)
		if err != nil {
			return "", fmt.Errorf("expanding %s: %w", KeyDataFile, err)
		}
		return filepath.Abs(path)
	}

	dir, err := DefaultDataDir()
	if err != nil {
		return "", fmt.Errorf("finding data directory: %w", err)
	}
	name := "later.json"
	if backend == BackendSQLite {
		name = "later.db"
	}
	return filepath.Join(dir, name), nil
}
