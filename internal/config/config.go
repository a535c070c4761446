package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Default endpoint deployments. Reservations and cancellations go to separate
// script deployments; either can be overridden through the environment.
const (
	DefaultReservationEndpointURL  = "https://script.google.com/macros/s/AKfycbw8NFcaLOtYElMgabkFPUlO8K1uVGMbe9sCqxxOOdzeKXX_UWjObeKzBpXMG56b0cIx/exec"
	DefaultCancellationEndpointURL = "https://script.google.com/macros/s/AKfycbzA85p6WOC0K07-qMcXbmXkriLJQVTUKA3iqkIQ0C4I6qA2N_P--9mAD3m8TN8FFCuF/exec"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	// Site
	Timezone           string
	SessionTTL         time.Duration
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	// Remote script endpoints
	ReservationEndpointURL  string
	CancellationEndpointURL string
	EndpointTimeout         time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),

		Timezone:           getEnv("SITE_TIMEZONE", "Asia/Tokyo"),
		SessionTTL:         getEnvAsDuration("SESSION_TTL", 2*time.Hour),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),

		ReservationEndpointURL:  getEnv("RESERVATION_ENDPOINT_URL", DefaultReservationEndpointURL),
		CancellationEndpointURL: getEnv("CANCELLATION_ENDPOINT_URL", DefaultCancellationEndpointURL),
		EndpointTimeout:         getEnvAsDuration("ENDPOINT_TIMEOUT", 20*time.Second),
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
