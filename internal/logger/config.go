package logger

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	// ConsoleStream is stderr or stdout. Generated YAML may go to stdout,
	// so logs default to stderr.
	ConsoleStream  string `yaml:"console_stream"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
	FileCompress   bool   `yaml:"file_compress"`
}

// LoggingConfig wraps the Config for YAML parsing
type LoggingConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns console-only text logging at INFO
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		ConsoleStream:  "stderr",
		FileEnabled:    false,
		FilePath:       "logs/dungeongen.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig reads the logging section of a YAML file over the defaults
// and applies environment variable overrides. A missing file or empty
// path yields the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			// Keys absent from the file keep their default values
			wrapper := LoggingConfig{Logging: config}
			if err := yaml.Unmarshal(data, &wrapper); err != nil {
				return config, fmt.Errorf("failed to parse logging config: %w", err)
			}
			config = wrapper.Logging
		case !os.IsNotExist(err):
			return config, fmt.Errorf("failed to read logging config: %w", err)
		}
	}

	applyEnv(&config)
	normalize(&config)

	return config, nil
}

func applyEnv(config *Config) {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Level = logLevel
	}

	if consoleFormat := os.Getenv("LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		config.ConsoleFormat = consoleFormat
	}

	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}
}

// normalize replaces nonsensical rotation limits with the defaults
func normalize(config *Config) {
	defaults := DefaultConfig()
	if config.FileMaxSizeMB <= 0 {
		config.FileMaxSizeMB = defaults.FileMaxSizeMB
	}
	if config.FileMaxBackups < 0 {
		config.FileMaxBackups = defaults.FileMaxBackups
	}
	if config.FileMaxAgeDays < 0 {
		config.FileMaxAgeDays = defaults.FileMaxAgeDays
	}
	if config.FilePath == "" {
		config.FilePath = defaults.FilePath
	}
}
