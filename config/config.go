// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"github.com/stratastor/logger"
	"github.com/stratastor/nimbus/internal/constants"
	"github.com/stratastor/nimbus/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	instance   *Config
	once       sync.Once
	configPath string // Tracks where the config was loaded from
)

type Config struct {
	Server struct {
		Port      int    `mapstructure:"port"`
		LogLevel  string `mapstructure:"logLevel"`
		Daemonize bool   `mapstructure:"daemonize"`
	} `mapstructure:"server"`

	Auth struct {
		// APIKey is the shared secret expected in the x-api-key header.
		APIKey string `mapstructure:"apiKey"`
	} `mapstructure:"auth"`

	Azure struct {
		SubscriptionID string `mapstructure:"subscriptionId"`
		ResourceGroup  string `mapstructure:"resourceGroup"`
	} `mapstructure:"azure"`

	Health struct {
		Interval string `mapstructure:"interval"`
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"health"`

	Logs struct {
		Path      string `mapstructure:"path"`
		Retention string `mapstructure:"retention"`
		Output    string `mapstructure:"output"` // stdout or file
	} `mapstructure:"logs"`

	Logger struct {
		LogLevel     string `mapstructure:"logLevel"`
		EnableSentry bool   `mapstructure:"enableSentry"`
		SentryDSN    string `mapstructure:"sentryDSN"`
	} `mapstructure:"logger"`

	Development struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"development"`

	Environment string `mapstructure:"environment"`
}

// LoadConfig loads the configuration with precedence rules.
func LoadConfig(configFilePath string) *Config {
	once.Do(func() {
		// Setup basic logger for initialization
		logConfig := logger.Config{
			LogLevel:     "info",
			EnableSentry: false,
			SentryDSN:    "",
		}
		l, err := logger.NewTag(logConfig, "config")
		if err != nil {
			fmt.Printf("Failed to create logger: %v\n", err)
			os.Exit(1)
		}

		viper.Reset()
		viper.SetConfigType("yaml")

		// Determine which config file to use with clear priorities
		systemConfigPath := filepath.Join(GetConfigDir(), constants.ConfigFileName)

		if configFilePath != "" {
			// 1. Priority: Explicit path from command line
			configPath = configFilePath
		} else if envPath := os.Getenv("NIMBUS_CONFIG"); envPath != "" {
			// 2. Priority: Environment variable
			configPath = envPath
		} else {
			// 3. Priority: Always default to system-wide config
			configPath = systemConfigPath
		}

		l.Info("Using config file", "path", configPath)

		if absPath, err := filepath.Abs(configPath); err == nil {
			configPath = absPath
		}

		viper.SetConfigFile(configPath)

		// Set defaults
		viper.SetDefault("environment", "dev")
		viper.SetDefault("server.port", 8044)
		viper.SetDefault("server.logLevel", "debug")
		viper.SetDefault("server.daemonize", false)
		viper.SetDefault("auth.apiKey", "changeme")
		viper.SetDefault("azure.subscriptionId", "")
		viper.SetDefault("azure.resourceGroup", "")
		viper.SetDefault("health.interval", "30s")
		viper.SetDefault("health.endpoint", "/health")
		viper.SetDefault("logs.path", "/var/log/nimbus/nimbus.log")
		viper.SetDefault("logs.retention", "7d")
		viper.SetDefault("logs.output", "stdout")
		viper.SetDefault("logger.logLevel", "debug")
		viper.SetDefault("logger.enableSentry", false)
		viper.SetDefault("logger.sentryDSN", "")
		viper.SetDefault("development.enabled", false)

		// Bind environment variables
		viper.AutomaticEnv()
		viper.SetEnvPrefix("NIMBUS")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		// The original deployment addressed these by their Azure names; keep
		// them working alongside the NIMBUS_* forms.
		viper.BindEnv("azure.subscriptionId", "NIMBUS_AZURE_SUBSCRIPTIONID", "AZURE_SUBSCRIPTION_ID")
		viper.BindEnv("azure.resourceGroup", "NIMBUS_AZURE_RESOURCEGROUP", "AZURE_RESOURCE_GROUP")
		viper.BindEnv("auth.apiKey", "NIMBUS_AUTH_APIKEY", "ANF_API_KEY")

		err = viper.ReadInConfig()

		// Handle missing or invalid config
		if err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				l.Info(
					"Config file not found, creating default at system path",
					"path",
					systemConfigPath,
				)

				if err := os.MkdirAll(GetConfigDir(), 0755); err != nil {
					l.Error("Failed to create config directory", "err", err)
				}

				var cfg Config
				if err := viper.Unmarshal(&cfg); err != nil {
					l.Error("Failed to unmarshal default configuration", "err", err)
				}

				instance = &cfg
				configPath = systemConfigPath

				if err := SaveConfig(systemConfigPath); err != nil {
					l.Error("Failed to save default configuration", "err", err)
				}
			} else {
				l.Error("Error reading config file", "err", err)

				// Still use defaults
				var cfg Config
				if err := viper.Unmarshal(&cfg); err != nil {
					l.Error("Failed to unmarshal default configuration", "err", err)
				}

				instance = &cfg
			}
		} else {
			l.Info("Config file loaded successfully", "path", viper.ConfigFileUsed())
			configPath = viper.ConfigFileUsed()

			var cfg Config
			if err := viper.Unmarshal(&cfg); err != nil {
				l.Error("Failed to parse configuration", "err", err)
			} else {
				instance = &cfg
			}
		}

		if instance.Auth.APIKey == "changeme" {
			l.Warn("API key is the default value, set auth.apiKey before exposing the gateway")
		}

		// Log config values for debugging (redact sensitive data)
		debugCfg := *instance
		debugCfg.Auth.APIKey = "[REDACTED]"
		l.Debug("Loaded configuration", "config", fmt.Sprintf("%+v", debugCfg))
	})

	return instance
}

// Validate checks that the target resource coordinates are present. Missing
// subscription or resource group is a fatal startup condition.
func (c *Config) Validate() error {
	if c.Azure.SubscriptionID == "" {
		return errors.New(errors.ConfigMissingSubscription,
			"set azure.subscriptionId or AZURE_SUBSCRIPTION_ID")
	}
	if c.Azure.ResourceGroup == "" {
		return errors.New(errors.ConfigMissingResourceGroup,
			"set azure.resourceGroup or AZURE_RESOURCE_GROUP")
	}
	return nil
}

// SaveConfig persists the current configuration to a specified path.
func SaveConfig(path string) error {
	if path == "" {
		if os.Geteuid() == 0 {
			if err := os.MkdirAll(GetConfigDir(), 0755); err != nil {
				return fmt.Errorf("failed to create system config directory: %w", err)
			}
			path = filepath.Join(GetConfigDir(), constants.ConfigFileName)
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			userConfigDir := filepath.Join(home, ".nimbus")
			if err := os.MkdirAll(userConfigDir, 0755); err != nil {
				return fmt.Errorf("failed to create user config directory: %w", err)
			}
			path = filepath.Join(userConfigDir, constants.ConfigFileName)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configYAML, err := yaml.Marshal(instance)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	if err := os.WriteFile(path, configYAML, 0644); err != nil {
		return fmt.Errorf("failed to write configuration to file: %w", err)
	}

	configPath = path

	return nil
}

// GetLoadedConfigPath returns the path of the currently loaded configuration file.
func GetLoadedConfigPath() string {
	return configPath
}

// GetConfig returns the current configuration instance.
func GetConfig() *Config {
	if instance == nil {
		return LoadConfig("")
	}
	return instance
}

func NewLoggerConfig(cfg *Config) logger.Config {
	if cfg == nil {
		return logger.Config{
			LogLevel:     "info",
			EnableSentry: false,
			SentryDSN:    "",
		}
	}

	return logger.Config{
		LogLevel:     cfg.Logger.LogLevel,
		EnableSentry: cfg.Logger.EnableSentry,
		SentryDSN:    cfg.Logger.SentryDSN,
	}
}
