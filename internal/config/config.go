package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the public AI Image Generator endpoint.
const DefaultBaseURL = "https://api.img-gen.ai"

// envBindings maps config keys to the environment variables that set them,
// in priority order. AI_IMG_GEN_API_KEY is the variable the SDK examples use.
var envBindings = map[string][]string{
	"api.base_url":   {"IMGGEN_BASE_URL"},
	"api.api_key":    {"IMGGEN_API_KEY", "AI_IMG_GEN_API_KEY"},
	"api.timeout":    {"IMGGEN_TIMEOUT"},
	"api.retries":    {"IMGGEN_RETRIES"},
	"logging.level":  {"IMGGEN_LOG_LEVEL"},
	"logging.format": {"IMGGEN_LOG_FORMAT"},
	"logging.color":  {"IMGGEN_LOG_COLOR"},
	"output":         {"IMGGEN_OUTPUT"},
}

// flagBindings maps config keys to command line flag names.
var flagBindings = map[string]string{
	"api.base_url":   "base-url",
	"api.api_key":    "api-key",
	"api.timeout":    "timeout",
	"api.retries":    "retries",
	"logging.level":  "log-level",
	"logging.format": "log-format",
	"output":         "output",
}

// Load loads the configuration. Sources, from highest priority: flags set
// on the command line, environment variables, the config file, defaults.
//
// An explicit configPath must exist. Without one, imggen.yaml is looked up
// in the current directory, ~/.imggen and /etc/imggen; a missing file is
// not an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("imggen")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".imggen"))
		}

		// Check /etc
		v.AddConfigPath("/etc/imggen/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.retries", 1)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("output", "text")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL: %q", cfg.API.BaseURL)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive: %s", cfg.API.Timeout)
	}
	if cfg.API.Retries < 0 {
		return fmt.Errorf("api.retries must not be negative: %d", cfg.API.Retries)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid output format: %s (must be text, json or yaml)", cfg.Output)
	}

	return nil
}
