// Package config holds the settings of the knapdag command.
//
// Sources, lowest priority first: built-in defaults, a YAML file, KNAPDAG_*
// environment variables, and finally command-line flags (applied by the
// caller). Validate runs after all of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/solver"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "KNAPDAG_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full command configuration.
type Config struct {
	Solve SolveConfig `yaml:"solve"`
	Bench BenchConfig `yaml:"bench"`
	Log   LogConfig   `yaml:"log"`
}

// SolveConfig drives the solve command.
type SolveConfig struct {
	// Algos lists solver.ParseAlgo names to run.
	Algos []string `yaml:"algos"`
	// TieBreak is a dag.ParseTieBreak name.
	TieBreak string `yaml:"tie_break"`
	// Oracle adds the branch-and-bound oracle to the cross-check.
	Oracle bool `yaml:"oracle"`
	// TimeLimit bounds the oracle; 0 disables it.
	TimeLimit time.Duration `yaml:"time_limit"`
	// MaxGoroutines bounds concurrent solves.
	MaxGoroutines int `yaml:"max_goroutines"`
}

// BenchConfig drives the bench command.
type BenchConfig struct {
	Sizes       []int `yaml:"sizes"`
	MinValue    int   `yaml:"min_value"`
	MaxValue    int   `yaml:"max_value"`
	MinCapacity int   `yaml:"min_capacity"`
	MaxCapacity int   `yaml:"max_capacity"`
	Seed        int64 `yaml:"seed"`
	SortByRatio bool  `yaml:"sort_by_ratio"`
}

// LogConfig selects level and format of the command's logs.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration. The bench section reproduces
// the original harness: sizes 10..1000, values and weights in [1, 30],
// capacity in [6, 20], items sorted by ratio.
func Default() Config {
	return Config{
		Solve: SolveConfig{
			Algos:         []string{"dp", "sp-dense", "sp-frontier"},
			TieBreak:      dag.PreferSkip.String(),
			Oracle:        true,
			TimeLimit:     30 * time.Second,
			MaxGoroutines: 4,
		},
		Bench: BenchConfig{
			Sizes:       []int{10, 50, 100, 500, 1000},
			MinValue:    1,
			MaxValue:    30,
			MinCapacity: 6,
			MaxCapacity: 20,
			Seed:        0,
			SortByRatio: true,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overrides cfg from KNAPDAG_* variables. Malformed numbers are errors.
func loadEnv(cfg *Config) error {
	env := func(key string) string { return os.Getenv(EnvPrefix + key) }

	if v := env("ALGOS"); v != "" {
		cfg.Solve.Algos = splitList(v)
	}
	if v := env("TIE_BREAK"); v != "" {
		cfg.Solve.TieBreak = v
	}
	if v := env("ORACLE"); v != "" {
		cfg.Solve.Oracle = v == "true" || v == "1"
	}
	if v := env("TIME_LIMIT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sTIME_LIMIT: %v", ErrInvalid, EnvPrefix, err)
		}
		cfg.Solve.TimeLimit = d
	}
	if v := env("MAX_GOROUTINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_GOROUTINES: %v", ErrInvalid, EnvPrefix, err)
		}
		cfg.Solve.MaxGoroutines = n
	}
	if v := env("BENCH_SIZES"); v != "" {
		sizes, err := ParseSizes(v)
		if err != nil {
			return fmt.Errorf("%w: %sBENCH_SIZES: %v", ErrInvalid, EnvPrefix, err)
		}
		cfg.Bench.Sizes = sizes
	}
	if v := env("SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED: %v", ErrInvalid, EnvPrefix, err)
		}
		cfg.Bench.Seed = seed
	}
	if v := env("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := env("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	return nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if len(c.Solve.Algos) == 0 {
		return fmt.Errorf("%w: no algorithms selected", ErrInvalid)
	}
	for _, name := range c.Solve.Algos {
		if _, err := solver.ParseAlgo(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if _, err := dag.ParseTieBreak(c.Solve.TieBreak); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Solve.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit %v", ErrInvalid, c.Solve.TimeLimit)
	}
	if c.Solve.MaxGoroutines < 1 {
		return fmt.Errorf("%w: max_goroutines must be at least 1, got %d", ErrInvalid, c.Solve.MaxGoroutines)
	}

	b := c.Bench
	if len(b.Sizes) == 0 {
		return fmt.Errorf("%w: no bench sizes", ErrInvalid)
	}
	for _, n := range b.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: bench size %d", ErrInvalid, n)
		}
	}
	if b.MinValue < 1 || b.MaxValue < b.MinValue {
		return fmt.Errorf("%w: value range [%d, %d]", ErrInvalid, b.MinValue, b.MaxValue)
	}
	if b.MinCapacity < 0 || b.MaxCapacity < b.MinCapacity {
		return fmt.Errorf("%w: capacity range [%d, %d]", ErrInvalid, b.MinCapacity, b.MaxCapacity)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q, want text or json", ErrInvalid, c.Log.Format)
	}

	return nil
}

// ParseSizes reads a comma-separated list of positive integers.
func ParseSizes(s string) ([]int, error) {
	parts := splitList(s)
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

// splitList splits on commas and drops blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
