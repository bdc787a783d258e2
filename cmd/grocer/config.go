// Config loading for the grocer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pantry-tools/grocer/internal/paths"
	"github.com/pantry-tools/grocer/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeySheetURL = "sheet_url"
	cfgKeyCacheTTL = "cache_ttl"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config directory or config.yaml is not an error; defaults
// apply and `grocer init` creates the file.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSheets)
	v.SetDefault(cfgKeyCacheTTL, types.DefaultCacheTTLSeconds)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// configFileExists reports whether config.yaml is present in the directory.
func configFileExists(configDir string) bool {
	_, err := os.Stat(filepath.Join(configDir, configFileExt))
	return err == nil
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > GROCER_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > GROCER_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveSheetURL returns the sheet URL following the precedence chain:
// --sheet-url flag > config.yaml sheet_url > GROCER_SHEET_URL env.
func resolveSheetURL() string {
	return paths.ResolveSheetURL(flagSheetURL, configSheetURL)
}
