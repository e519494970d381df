package config

import (
	"os"

	"github.com/spf13/viper"
)

// Default sheet names in the MISMO UniqueID Matrix workbook. The data point
// sheets are split on the million-row boundary because xlsx caps sheets at
// 1,048,576 rows.
var defaultSheets = []string{
	"Container XPaths",
	"Data Point XPaths (1-1m)",
	"Data Point XPaths (1m+)",
}

// DefaultDirPermissions for the ~/.xmatrix directory
const DefaultDirPermissions = 0o755

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "xmatrix.db")
	v.SetDefault("import.sheets", defaultSheets)

	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 512)
	v.SetDefault("anthropic.temperature", 0.2) // deterministic intent parsing
}

// BindSensitiveEnvVars binds secrets to their conventional environment
// variables so they never need to live in a config file.
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY", "XMATRIX_ANTHROPIC_API_KEY")

	// DB_PATH override for dev mode
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		v.Set("database.path", dbPath)
	}
}
