package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL     string        `mapstructure:"api_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // 0 leaves the transport defaults
	TimeZone       string        `mapstructure:"time_zone"`       // IANA name or Local
	// Demo backend
	DemoDBPath     string `mapstructure:"demo_db_path"`
	DemoListenAddr string `mapstructure:"demo_listen_addr"`
}

// Location resolves the configured time zone
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time_zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// EnvPrefix is the prefix of environment variables that override file values
const EnvPrefix = "CAREERPORTAL"

// ValidKeys lists the keys accepted by Set
var ValidKeys = []string{"api_base_url", "request_timeout", "time_zone", "demo_db_path", "demo_listen_addr"}

var AppConfig *Config

var configDir string

// Initialize loads or creates the configuration file under ~/.careerportal
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".careerportal"))
}

// InitializeAt loads or creates the configuration file in dir
func InitializeAt(dir string) error {
	configFile := filepath.Join(dir, "config.yaml")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.Reset()
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("api_base_url", "http://localhost:3000/api")
	viper.SetDefault("request_timeout", "0s")
	viper.SetDefault("time_zone", "Local")
	viper.SetDefault("demo_db_path", filepath.Join(dir, "demo.db"))
	viper.SetDefault("demo_listen_addr", ":3000")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.DemoDBPath = expandHome(cfg.DemoDBPath)

	configDir = dir
	AppConfig = cfg
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Career Portal Configuration
# Base URL of the jobs/applications API
api_base_url: http://localhost:3000/api

# Per-request timeout (Go duration); 0s keeps the transport defaults
request_timeout: 0s

# Time zone used for "Applied On" dates (IANA name or Local)
time_zone: Local

# Local demo backend (careerportal demo serve)
# demo_db_path: ~/.careerportal/demo.db
demo_listen_addr: ":3000"
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set validates and persists a configuration value
func Set(key, value string) error {
	if !slices.Contains(ValidKeys, key) {
		return fmt.Errorf("invalid key %q, must be one of: %s", key, strings.Join(ValidKeys, ", "))
	}
	switch key {
	case "request_timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid request_timeout: %w", err)
		}
	case "time_zone":
		if !strings.EqualFold(value, "local") {
			if _, err := time.LoadLocation(value); err != nil {
				return fmt.Errorf("invalid time_zone: %w", err)
			}
		}
	}

	viper.Set(key, value)
	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configDir != "" {
		return filepath.Join(configDir, "config.yaml")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".careerportal", "config.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
