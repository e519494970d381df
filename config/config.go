// Package config loads and persists xmatrix configuration.
//
// Configuration is resolved through Viper from TOML files and environment
// variables, then handed to constructors as an explicit Config struct; no
// package reads configuration globals at query time.
package config

// Config represents the xmatrix configuration
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database" toml:"database"`
	Import    ImportConfig    `mapstructure:"import" toml:"import"`
	Anthropic AnthropicConfig `mapstructure:"anthropic" toml:"anthropic"`
}

// DatabaseConfig configures the SQLite record store
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// ImportConfig configures the matrix workbook import
type ImportConfig struct {
	// Sheets lists the workbook sheet names to import. Sheet labels change
	// between matrix releases, so they are configuration, not code.
	Sheets []string `mapstructure:"sheets" toml:"sheets"`
}

// AnthropicConfig configures the intent-parsing model
type AnthropicConfig struct {
	APIKey      string  `mapstructure:"api_key" toml:"api_key"`
	Model       string  `mapstructure:"model" toml:"model"`
	MaxTokens   int     `mapstructure:"max_tokens" toml:"max_tokens"`
	Temperature float64 `mapstructure:"temperature" toml:"temperature"`
}

// Redacted returns a copy of the config safe for display, with secrets masked
func (c *Config) Redacted() Config {
	out := *c
	if out.Anthropic.APIKey != "" {
		out.Anthropic.APIKey = "********"
	}
	return out
}
