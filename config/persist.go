package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/xmatrix/errors"
)

// WriteDefault writes a starter config file to the per-user config path.
// Existing files are left untouched.
func WriteDefault() (string, error) {
	configPath := UserConfigPath()
	if configPath == "" {
		return "", errors.New("could not determine home directory")
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}

	starter := Config{
		Database: DatabaseConfig{Path: "xmatrix.db"},
		Import:   ImportConfig{Sheets: defaultSheets},
		Anthropic: AnthropicConfig{
			Model:       "claude-haiku-4-5-20251001",
			MaxTokens:   512,
			Temperature: 0.2,
		},
	}

	content, err := toml.Marshal(starter)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write config file")
	}

	return configPath, nil
}

// MarshalTOML renders a config as TOML for display
func MarshalTOML(c Config) (string, error) {
	content, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal config")
	}
	return string(content), nil
}
