// Package config provides configuration management for the apigw-lambda CLI.
//
// Viper stays contained in this package; the rest of the codebase receives
// explicit Config structs. Sources resolve in this order:
// flags > env > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the explicit configuration struct the rest of the codebase sees.
type Config struct {
	Profile string
	Region  string
	Stage   string
	Output  string
}

// Init initializes viper with defaults, env binding and config file paths.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.apigw-lambda")
	viper.AddConfigPath(".")

	viper.SetDefault("profile", "")
	viper.SetDefault("region", "")
	viper.SetDefault("stage", "prod")
	viper.SetDefault("output", "text")

	viper.SetEnvPrefix("APIGW_LAMBDA")
	viper.AutomaticEnv()

	// Missing config file is fine; everything has a default.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// Load reads from all sources and returns an explicit Config.
func Load() (*Config, error) {
	cfg := &Config{
		Profile: viper.GetString("profile"),
		Region:  viper.GetString("region"),
		Stage:   viper.GetString("stage"),
		Output:  viper.GetString("output"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures config is sane.
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format: %s (must be text or json)", c.Output)
	}

	if c.Stage == "" {
		return fmt.Errorf("stage name must not be empty")
	}

	return nil
}

// stateDir is where the latest-profile cache lives. Overridable through
// APIGW_LAMBDA_STATE_DIR so tests never touch the real home directory.
func stateDir() (string, error) {
	if dir := os.Getenv("APIGW_LAMBDA_STATE_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".apigw-lambda"), nil
}

func stateFile() (*viper.Viper, string, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, "state.yaml")

	v := viper.New()
	v.SetConfigFile(path)
	return v, path, nil
}

// RecordLastUsed persists the profile and region of the most recent
// successful credential resolution. An empty profile means the default chain.
func RecordLastUsed(profile, region string) error {
	v, path, err := stateFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	v.Set("last-profile", profile)
	v.Set("last-region", region)
	v.Set("last-used-at", time.Now().UTC().Format(time.RFC3339))

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// LastUsed returns the cached most-recently-used profile, or ok=false when
// nothing has been recorded yet.
func LastUsed() (profile, region string, usedAt time.Time, ok bool) {
	v, _, err := stateFile()
	if err != nil {
		return "", "", time.Time{}, false
	}

	if err := v.ReadInConfig(); err != nil {
		return "", "", time.Time{}, false
	}

	at, _ := time.Parse(time.RFC3339, v.GetString("last-used-at"))
	return v.GetString("last-profile"), v.GetString("last-region"), at, true
}
