package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "STOCKROOM"

	// Config keys.
	cfgKeyDataFile          = "data_file"
	cfgKeyLogLevel          = "log_level"
	cfgKeyLogFormat         = "log_format"
	cfgKeyLowStockThreshold = "low_stock_threshold"
)

// defaultConfigYAML is the content written to config.yaml by init.
const defaultConfigYAML = `# Stockroom configuration

# Inventory snapshot file (optional; overridable by --data-file flag)
# data_file: inventory.json

# Logging: debug, info, warn, error; text or json
log_level: warn
log_format: text

# Quantity at or below which report lists a product as low stock
low_stock_threshold: 5
`

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; defaults apply. STOCKROOM_LOG_LEVEL,
// STOCKROOM_LOG_FORMAT and STOCKROOM_LOW_STOCK_THRESHOLD override the file.
func loadConfig(configDir string) (types.Config, error) {
	defaults := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyDataFile, "")
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyLogFormat, defaults.LogFormat)
	v.SetDefault(cfgKeyLowStockThreshold, defaults.LowStockThreshold)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyLogLevel, cfgKeyLogFormat, cfgKeyLowStockThreshold} {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory. It reports whether a file was written.
func ensureDefaultConfigFile(configDir string) (bool, error) {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
