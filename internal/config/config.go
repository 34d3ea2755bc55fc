// Package config loads camsync configuration from command-line flags,
// environment variables, and .env files, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds everything a camsync command needs to run.
type Config struct {
	// DatabasePath is the SQLite database file. Required by every
	// command that touches storage; there is no default on purpose -
	// a missing connection path is a startup error, not a guess.
	DatabasePath string

	// RootDir is the catalog directory tree to sync from.
	RootDir string

	// LogFile, when set, receives a rotating copy of the sync log in
	// addition to stderr.
	LogFile string

	// Verbose adds extra detail to log lines.
	Verbose bool
}

// Bind wires a command's flags into viper so flag values take precedence
// over environment variables. Call once after flag registration.
func Bind(fs *pflag.FlagSet) error {
	return viper.BindPFlags(fs)
}

// Load reads configuration from all sources in order of precedence:
//  1. Command-line flags (bound via Bind)
//  2. Environment variables (CAMSYNC_DB, CAMSYNC_ROOT, ...)
//  3. .env files in the working directory
func Load() *Config {
	loadEnvFiles()

	viper.SetEnvPrefix("CAMSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return &Config{
		DatabasePath: viper.GetString("db"),
		RootDir:      viper.GetString("root"),
		LogFile:      viper.GetString("log-file"),
		Verbose:      viper.GetBool("verbose"),
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already present in the environment are never overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// Validate checks the configuration every storage-touching command needs.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path not configured (set --db or CAMSYNC_DB)")
	}
	return nil
}

// ValidateRoot additionally requires an existing catalog root directory.
// The sync command calls this before doing any work.
func (c *Config) ValidateRoot() error {
	if c.RootDir == "" {
		return fmt.Errorf("catalog root not configured (set --root or CAMSYNC_ROOT)")
	}
	info, err := os.Stat(c.RootDir)
	if err != nil {
		return fmt.Errorf("catalog root %s: %w", c.RootDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("catalog root %s is not a directory", c.RootDir)
	}
	return nil
}
