package types

import "errors"

// Config holds the settings read from config.yaml.
type Config struct {
	DataFile          string `json:"data_file" yaml:"data_file" mapstructure:"data_file"`
	LogLevel          string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat         string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
	LowStockThreshold int    `json:"low_stock_threshold" yaml:"low_stock_threshold" mapstructure:"low_stock_threshold"`
}

// Supported log levels and formats.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config defaults. DataFile has none here; an empty value defers to the
// path resolution chain.
const (
	DefaultLogLevel          = LogLevelWarn
	DefaultLogFormat         = LogFormatText
	DefaultLowStockThreshold = 5
)

// Config validation errors.
var (
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
	ErrThresholdInvalid = errors.New("low stock threshold must not be negative")
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

var knownLogFormats = map[string]bool{
	LogFormatText: true,
	LogFormatJSON: true,
}

// DefaultConfig returns the settings used when config.yaml sets nothing.
func DefaultConfig() Config {
	return Config{
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		LowStockThreshold: DefaultLowStockThreshold,
	}
}

// Validate checks that the Config is well-formed. Empty log settings are
// accepted and mean the defaults.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.LogFormat != "" && !knownLogFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	if c.LowStockThreshold < 0 {
		return ErrThresholdInvalid
	}
	return nil
}
