package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by logcli
const EnvPrefix = "LOGCLI"

// EnvConfig holds environment overrides.
type EnvConfig struct {
	// Config is an alternative config file path.
	// Env: LOGCLI_CONFIG
	Config string `envconfig:"CONFIG"`

	// Color is the color mode (auto, always, never).
	// Env: LOGCLI_COLOR
	Color string `envconfig:"COLOR"`

	// LogLevel is the diagnostic log level.
	// Env: LOGCLI_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// LoadFromEnv reads the LOGCLI_ variables
func LoadFromEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvConfig{}, err
	}
	return env, nil
}

// Apply overrides cfg with every variable that is set
func (e EnvConfig) Apply(cfg *Config) error {
	if e.Color != "" {
		cfg.Display.Color = strings.ToLower(e.Color)
	}
	if e.LogLevel != "" {
		cfg.Log.Level = e.LogLevel
	}
	return cfg.Validate()
}
