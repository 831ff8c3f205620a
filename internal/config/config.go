package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Logging
	LogLevel string

	// Dataset source
	DatasetBackend string // csv | sqlite | postgres | sheets
	DatasetPath    string // csv file or sqlite database file
	DatasetTable   string // table name for sqlite/postgres backends

	// Postgres
	PostgresURL string

	// Google Sheets
	SheetsSpreadsheetID string
	SheetsReadRange     string

	// Chart-spec cache
	CacheSize int
	CacheTTL  time.Duration
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatasetBackend: getEnv("DATASET_BACKEND", "csv"),
		DatasetPath:    getEnv("DATASET_PATH", "data/healthcare.csv"),
		DatasetTable:   getEnv("DATASET_TABLE", "records"),

		PostgresURL: getEnv("POSTGRES_URL", ""),

		SheetsSpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsReadRange:     getEnv("SHEETS_READ_RANGE", "Records"),

		CacheSize: getEnvInt("CHART_CACHE_SIZE", 256),
		CacheTTL:  getEnvDuration("CHART_CACHE_TTL", 5*time.Minute),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	validBackends := []string{"csv", "sqlite", "postgres", "sheets"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DatasetBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid dataset backend '%s': must be one of %v", c.DatasetBackend, validBackends))
	}

	switch c.DatasetBackend {
	case "csv", "sqlite":
		if c.DatasetPath == "" {
			errors = append(errors, fmt.Sprintf("dataset path cannot be empty when using %s backend", c.DatasetBackend))
		}
	case "postgres":
		if c.PostgresURL == "" {
			errors = append(errors, "POSTGRES_URL is required when using postgres backend")
		} else if parsedURL, err := url.Parse(c.PostgresURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid Postgres URL '%s': %v", c.PostgresURL, err))
		} else if parsedURL.Scheme != "postgres" && parsedURL.Scheme != "postgresql" {
			errors = append(errors, fmt.Sprintf("invalid Postgres URL scheme '%s': must be 'postgres' or 'postgresql'", parsedURL.Scheme))
		}
	case "sheets":
		if c.SheetsSpreadsheetID == "" {
			errors = append(errors, "SHEETS_SPREADSHEET_ID is required when using sheets backend")
		}
		if c.SheetsReadRange == "" {
			errors = append(errors, "sheets read range cannot be empty when using sheets backend")
		}
	}

	if c.DatasetBackend == "sqlite" || c.DatasetBackend == "postgres" {
		if strings.TrimSpace(c.DatasetTable) == "" {
			errors = append(errors, "dataset table name cannot be empty")
		}
	}

	if c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid chart cache size %d: must be at least 1", c.CacheSize))
	} else if c.CacheSize > 100000 {
		errors = append(errors, fmt.Sprintf("invalid chart cache size %d: must be at most 100000", c.CacheSize))
	}

	if c.CacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid chart cache TTL %v: must be at least 1 second", c.CacheTTL))
	} else if c.CacheTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid chart cache TTL %v: must be at most 24 hours", c.CacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
