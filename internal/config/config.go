package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"catchthatlemon/internal/domain"
)

const AppName = "CatchThatLemon"

const (
	EnvSeed        = "LEMON_SEED"
	EnvDataDir     = "LEMON_DATA_DIR"
	EnvChecksumKey = "LEMON_CHECKSUM_KEY"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	SpritesDir     string
	BackgroundsDir string
	SoundsDir      string
	DataDir        string
	Difficulty     domain.Difficulty
	Volume         float64
	Mute           bool
	// Seed of 0 means seed from the clock.
	Seed        int64
	ChecksumKey string
}

func DefaultConfig() *Config {
	return &Config{
		SpritesDir:     "sprites",
		BackgroundsDir: "backgrounds",
		SoundsDir:      "sounds",
		DataDir:        defaultDataDir(),
		Difficulty:     domain.DifficultyEasy,
		Volume:         0.5,
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, AppName)
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: empty data dir", ErrInvalid)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside [0,1]", ErrInvalid, c.Volume)
	}
	if c.Difficulty < domain.DifficultyClassic || c.Difficulty > domain.DifficultyHard {
		return fmt.Errorf("%w: difficulty %d", ErrInvalid, c.Difficulty)
	}
	return nil
}

// Load builds the config from defaults, then environment, then flags.
func Load(name string, args []string, getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := getenv(EnvChecksumKey); v != "" {
		cfg.ChecksumKey = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	difficulty := cfg.Difficulty.String()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.SpritesDir, "sprites", cfg.SpritesDir, "Directory with sprite images")
	fs.StringVar(&cfg.BackgroundsDir, "backgrounds", cfg.BackgroundsDir, "Directory with background images")
	fs.StringVar(&cfg.SoundsDir, "sounds", cfg.SoundsDir, "Directory with music and sound effects")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory for high scores and leaderboards")
	fs.StringVar(&difficulty, "difficulty", difficulty, "Starting difficulty: classic, easy, medium or hard")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Initial volume between 0 and 1")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable audio")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time based")
	fs.StringVar(&cfg.ChecksumKey, "checksum-key", cfg.ChecksumKey, "Key for save file checksums")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg.Difficulty = d

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
