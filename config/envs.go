// Package config loads host settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidValue indicates an environment variable that could not be parsed
// or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the host's configuration values.
type Config struct {
	Width     int           // lattice width in cells
	Height    int           // lattice height in cells
	CellUnit  int           // terminal columns per cell
	StepDelay time.Duration // pause between two steps
	Seed      int64         // 0 picks a time-based seed
	LogLevel  string        // logrus level name
	LogFile   string        // empty logs to stderr
}

// Defaults mirror the classic 1030px board drawn with 30px cells.
const (
	DefaultWidth     = 34
	DefaultHeight    = 34
	DefaultCellUnit  = 2
	DefaultStepDelay = 30 * time.Millisecond
	DefaultLogLevel  = "info"
)

// Load reads the given .env files (".env" when none are given) into the
// process environment without overriding variables already set, then parses
// the MAZE_* variables. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env files: %w", err)
	}

	var (
		cfg Config
		err error
	)
	if cfg.Width, err = getEnvAsInt("MAZE_WIDTH", DefaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsInt("MAZE_HEIGHT", DefaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.CellUnit, err = getEnvAsInt("MAZE_CELL_UNIT", DefaultCellUnit); err != nil {
		return Config{}, err
	}
	if cfg.StepDelay, err = getEnvAsDuration("MAZE_STEP_DELAY", DefaultStepDelay); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64("MAZE_SEED", 0); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = getEnvWithDefault("MAZE_LOG_LEVEL", DefaultLogLevel)
	cfg.LogFile = getEnvWithDefault("MAZE_LOG_FILE", "")

	if cfg.StepDelay <= 0 {
		return Config{}, fmt.Errorf("%w: MAZE_STEP_DELAY must be positive, got %s", ErrInvalidValue, cfg.StepDelay)
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses key as an int, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

// getEnvAsInt64 parses key as an int64, falling back to defaultValue when unset.
func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

// getEnvAsDuration parses key with time.ParseDuration, falling back to defaultValue when unset.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}
