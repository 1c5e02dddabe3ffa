package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aaronzipp/classroom-arcade/internal/game"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvMaxMisses, EnvWordsFile, EnvSeed, EnvLogFile, EnvDebug} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.MaxMisses != game.DefaultMaxMisses {
		t.Errorf("Expected %d max misses, got %d", game.DefaultMaxMisses, cfg.MaxMisses)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("Expected log file %q, got %q", DefaultLogFile, cfg.LogFile)
	}
	if cfg.Seeded || cfg.Debug || cfg.WordsFile != "" {
		t.Errorf("Expected no optional settings, got %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxMisses, "5")
	t.Setenv(EnvSeed, "-12")
	t.Setenv(EnvWordsFile, "words.json")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvDebug, "1")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.MaxMisses != 5 {
		t.Errorf("Expected 5 max misses, got %d", cfg.MaxMisses)
	}
	if !cfg.Seeded || cfg.Seed != -12 {
		t.Errorf("Expected seed -12, got %d (seeded=%v)", cfg.Seed, cfg.Seeded)
	}
	if cfg.WordsFile != "words.json" {
		t.Errorf("Expected words.json, got %q", cfg.WordsFile)
	}
	if cfg.LogFile != "" {
		t.Errorf("Expected logging disabled, got %q", cfg.LogFile)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{EnvMaxMisses, "seven"},
		{EnvMaxMisses, "0"},
		{EnvMaxMisses, "8"},
		{EnvSeed, "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("Expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "arcade.env")
	if err := os.WriteFile(path, []byte("ARCADE_MAX_MISSES=3\nARCADE_SEED=99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxMisses != 3 || cfg.Seed != 99 {
		t.Errorf("Expected values from env file, got %+v", cfg)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}
