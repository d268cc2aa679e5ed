package config

import (
	"errors"
	"testing"

	"catchthatlemon/internal/domain"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Difficulty != domain.DifficultyEasy {
		t.Errorf("default difficulty = %v, want Easy", cfg.Difficulty)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"volume too high", func(c *Config) { c.Volume = 1.5 }},
		{"negative volume", func(c *Config) { c.Volume = -0.1 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"unknown difficulty", func(c *Config) { c.Difficulty = 9 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", tt.name, err)
		}
	}
}

func TestLoadPrecedence(t *testing.T) {
	vars := map[string]string{
		EnvSeed:        "17",
		EnvDataDir:     "/tmp/from-env",
		EnvChecksumKey: "envkey",
	}
	cfg, err := Load("lemon", []string{"-data", "/tmp/from-flag", "-difficulty", "hard", "-volume", "0.25"}, env(vars))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/from-flag" {
		t.Errorf("DataDir = %q, flag should win", cfg.DataDir)
	}
	if cfg.Seed != 17 {
		t.Errorf("Seed = %d, want 17 from env", cfg.Seed)
	}
	if cfg.ChecksumKey != "envkey" {
		t.Errorf("ChecksumKey = %q", cfg.ChecksumKey)
	}
	if cfg.Difficulty != domain.DifficultyHard {
		t.Errorf("Difficulty = %v, want Hard", cfg.Difficulty)
	}
	if cfg.Volume != 0.25 {
		t.Errorf("Volume = %v, want 0.25", cfg.Volume)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load("lemon", nil, env(map[string]string{EnvSeed: "abc"})); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad seed: err = %v, want ErrInvalid", err)
	}
	if _, err := Load("lemon", []string{"-difficulty", "insane"}, env(nil)); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad difficulty: err = %v, want ErrInvalid", err)
	}
	if _, err := Load("lemon", []string{"-volume", "3"}, env(nil)); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad volume: err = %v, want ErrInvalid", err)
	}
}
