package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/webpick/internal/paths"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"`
	Icon    IconConfig    `mapstructure:"icon"`
	Launch  LaunchConfig  `mapstructure:"launch"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// ScanConfig controls browser discovery
type ScanConfig struct {
	// Roots are the application install directories to scan
	Roots []string `mapstructure:"roots"`
	// Workers bounds the scan worker pool; 0 means one per CPU
	Workers int `mapstructure:"workers"`
}

// IconConfig controls icon resolution
type IconConfig struct {
	// Size is the square pixel size icons are scaled to
	Size int `mapstructure:"size"`
}

// LaunchConfig controls how browsers are spawned
type LaunchConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(paths.ConfigDir(homeDir))
	}
	viper.AddConfigPath(".")

	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("WEBPICK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	for i, root := range cfg.Scan.Roots {
		cfg.Scan.Roots[i] = expandPath(root)
	}
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	viper.SetDefault("scan.roots", paths.DefaultRoots())
	viper.SetDefault("scan.workers", 0)

	viper.SetDefault("icon.size", 32)

	viper.SetDefault("launch.timeout_seconds", 5)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.color", "auto")

	viper.SetDefault("paths.log_file", filepath.Join(paths.DataDir(homeDir), "webpick.log"))
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	path = os.ExpandEnv(path)

	return path
}
