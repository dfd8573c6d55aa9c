// Package config provides configuration management for the movie-memo
// application. It handles loading and validation of configuration values from
// environment variables, with support for required variables, default values,
// and collective error reporting: every problem found while loading is
// collected and reported in a single error, so a misconfigured deployment
// fails once with the full list instead of one variable at a time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// MovieAPIConfig holds the settings for the external movie-metadata API.
// The variable names (API_KEY_V3, API_URL_V3) follow the v3 API the service
// consumes.
type MovieAPIConfig struct {
	APIKey  string
	BaseURL string
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DBPool   *PoolConfig
	MovieAPI *MovieAPIConfig
	Server   *ServerConfig
}

// getRequiredEnv reads a required environment variable, appending to the
// errors slice when it is missing. This keeps config loading fail-fast while
// still reporting every missing variable at once.
func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional environment variable with a default.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// parseAndValidatePoolSize converts a pool-size string to an integer and
// clamps it to the supported range. Out-of-range values are clamped and
// reported rather than silently accepted.
func parseAndValidatePoolSize(valueStr string, varName string, errs *[]string) int {
	if valueStr == "" {
		return defaultPoolSize
	}
	size, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid pool size for %s: expected integer, got '%s': %v", varName, valueStr, err))
		return defaultPoolSize
	}

	// Clamp the pool size between 5 and 100.
	if size < minPoolSize {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is less than minimum %d, clamping to %d", varName, size, minPoolSize, minPoolSize))
		size = minPoolSize
	}
	if size > maxPoolSize {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is greater than maximum %d, clamping to %d", varName, size, maxPoolSize, maxPoolSize))
		size = maxPoolSize
	}
	return size
}

const (
	minPoolSize     = 5
	maxPoolSize     = 100
	defaultPoolSize = 5
)

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	// Database configuration.
	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	poolSize := parseAndValidatePoolSize(getOptionalEnv("DB_POOL_SIZE", ""), "DB_POOL_SIZE", &errs)

	dbPool := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// External movie API configuration.
	movieAPI := &MovieAPIConfig{
		APIKey:  getRequiredEnv("API_KEY_V3", &errs),
		BaseURL: getRequiredEnv("API_URL_V3", &errs),
	}

	// Server configuration. The port stays a string because it is only ever
	// interpolated into a listen address.
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8000"),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DBPool:   dbPool,
		MovieAPI: movieAPI,
		Server:   serverConfig,
	}, nil
}
