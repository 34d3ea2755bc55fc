package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("CAMSYNC_DB", "/tmp/cams.db")
	t.Setenv("CAMSYNC_ROOT", "/tmp/products")
	t.Setenv("CAMSYNC_LOG_FILE", "/tmp/sync.log")

	cfg := Load()
	if cfg.DatabasePath != "/tmp/cams.db" {
		t.Errorf("unexpected database path: %q", cfg.DatabasePath)
	}
	if cfg.RootDir != "/tmp/products" {
		t.Errorf("unexpected root dir: %q", cfg.RootDir)
	}
	if cfg.LogFile != "/tmp/sync.log" {
		t.Errorf("unexpected log file: %q", cfg.LogFile)
	}
}

func TestFlagsTakePrecedenceOverEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("CAMSYNC_DB", "/from/env.db")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	if err := fs.Set("db", "/from/flag.db"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if err := Bind(fs); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	cfg := Load()
	if cfg.DatabasePath != "/from/flag.db" {
		t.Errorf("expected flag to win over env, got %q", cfg.DatabasePath)
	}
}

func TestValidateMissingDatabase(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database path")
	}
	if !strings.Contains(err.Error(), "CAMSYNC_DB") {
		t.Errorf("error should name the env var: %v", err)
	}
}

func TestValidateRoot(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{DatabasePath: "x.db", RootDir: dir}
	if err := cfg.ValidateRoot(); err != nil {
		t.Errorf("unexpected error for existing root: %v", err)
	}

	cfg.RootDir = filepath.Join(dir, "missing")
	if err := cfg.ValidateRoot(); err == nil {
		t.Error("expected error for nonexistent root")
	}

	cfg.RootDir = ""
	if err := cfg.ValidateRoot(); err == nil {
		t.Error("expected error for empty root")
	}
}
