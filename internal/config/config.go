// Package config loads application configuration from environment
// variables. Unlike the database-backed services this one can run with an
// empty environment: every value has a sensible default, and optional
// integrations (MySQL directory, Redis, RabbitMQ) switch off gracefully
// when their variables are absent.
package config

import (
    "os"
    "strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable.
type Config struct {
    Env       string // application environment (e.g. "dev", "prod")
    Port      string // HTTP port to listen on
    LogLevel  string // zerolog level name ("debug", "info", ...)
    Threshold int    // interested-user count that triggers a booking

    // Optional MySQL source for the user/venue directory. The loader is
    // only attempted when DBHost is non-empty; otherwise the built-in
    // seed fixtures are used.
    DBUser string
    DBPass string
    DBHost string
    DBPort string
    DBName string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() Config {
    return Config{
        Env:       getenv("APP_ENV", "dev"),
        Port:      getenv("APP_PORT", "8000"),
        LogLevel:  getenv("LOG_LEVEL", "info"),
        Threshold: envPositiveInt("INTEREST_THRESHOLD", 3),
        DBUser:    os.Getenv("DB_USER"),
        DBPass:    os.Getenv("DB_PASS"),
        DBHost:    os.Getenv("DB_HOST"),
        DBPort:    getenv("DB_PORT", "3306"),
        DBName:    getenv("DB_NAME", "luna"),
    }
}

// envPositiveInt parses a positive integer from the environment, falling
// back to def on absence, parse failure or non-positive values.
func envPositiveInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil || n < 1 {
        return def
    }
    return n
}
