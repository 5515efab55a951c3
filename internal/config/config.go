// Package config loads LabShell client settings. Sources are merged with
// proper priority (highest to lowest): process environment > local .env >
// config-dir .env > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the resolved client settings for one shell session.
type Config struct {
	// ServerURL is the websocket endpoint of the hub backend.
	ServerURL string
	// Token is an optional pre-issued session token. When empty the shell
	// starts unauthenticated and /login runs the interactive flow.
	Token string
	// Timeout bounds each remote tool call.
	Timeout time.Duration
	// LogLevel is the initial logger level, overridable by flags.
	LogLevel string
	// LogFile redirects log output away from the terminal when set.
	LogFile string
}

const (
	defaultServerURL = "ws://localhost:8443/ws"
	defaultTimeout   = 10 * time.Second
	defaultLogLevel  = "warn"
)

// envPrefix namespaces every LabShell environment variable.
const envPrefix = "LABSHELL"

// Load resolves the client configuration. Missing .env files are not errors;
// a malformed one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_url", defaultServerURL)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("token", "")

	// Lower-priority file sources load into the process environment first,
	// without overriding variables the user already exported.
	for _, path := range envFilePaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg := &Config{
		ServerURL: v.GetString("server_url"),
		Token:     v.GetString("token"),
		Timeout:   v.GetDuration("timeout"),
		LogLevel:  v.GetString("log_level"),
		LogFile:   v.GetString("log_file"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}

// envFilePaths returns candidate .env locations, local first so it wins over
// the config directory (godotenv.Load never overrides what is already set).
func envFilePaths() []string {
	paths := []string{".env"}
	if dir, err := ConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	return paths
}

// ConfigDir returns the LabShell configuration directory, ~/.labshell by
// default, overridable through LABSHELL_CONFIG_DIR for tests and packaging.
func ConfigDir() (string, error) {
	if dir := os.Getenv(envPrefix + "_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".labshell"), nil
}
