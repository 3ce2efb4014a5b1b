package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	DBPath           string
	LogLevel         string
	PeriodStartMonth int
	PeriodStartDay   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "leetrack.db"),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		PeriodStartMonth: envIntOr("PERIOD_START_MONTH", 1),
		PeriodStartDay:   envIntOr("PERIOD_START_DAY", 1),
	}
}

// Validate checks the configuration and reports every invalid field at once.
func (c Config) Validate() error {
	var faults []string

	if c.Addr == "" {
		faults = append(faults, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		faults = append(faults, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		faults = append(faults, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.PeriodStartMonth < 1 || c.PeriodStartMonth > 12 {
		faults = append(faults, fmt.Sprintf("PERIOD_START_MONTH must be in [1,12], got %d", c.PeriodStartMonth))
	}
	if c.PeriodStartDay < 1 || c.PeriodStartDay > 31 {
		faults = append(faults, fmt.Sprintf("PERIOD_START_DAY must be in [1,31], got %d", c.PeriodStartDay))
	}

	if len(faults) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(faults, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
