package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultOutput       = "human"
	DefaultAnalyzeDelay = 1500 * time.Millisecond
	DefaultAppName      = "skillready"
	DefaultEnv          = "development"
	DefaultPort         = ":8080"
	DefaultRateMax      = 50
	DefaultRateWindow   = time.Minute
)

// Config holds settings shared by every subcommand.
type Config struct {
	Output       string
	AnalyzeDelay time.Duration
	TaxonomyPath string
	App          AppConfig
}

// AppConfig holds the HTTP service settings.
type AppConfig struct {
	Name       string
	Env        string
	Port       string
	RateMax    int
	RateWindow time.Duration
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load reads a .env file when present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() *Config {
	return &Config{
		Output:       getEnv("SKILLREADY_OUTPUT", DefaultOutput),
		AnalyzeDelay: getDuration("SKILLREADY_ANALYZE_DELAY", DefaultAnalyzeDelay),
		TaxonomyPath: getEnv("SKILLREADY_TAXONOMY", ""),
		App: AppConfig{
			Name:       getEnv("APP_NAME", DefaultAppName),
			Env:        getEnv("APP_ENV", DefaultEnv),
			Port:       NormalizePort(getEnv("APP_PORT", DefaultPort)),
			RateMax:    getInt("RATE_LIMIT_MAX", DefaultRateMax),
			RateWindow: getDuration("RATE_LIMIT_WINDOW", DefaultRateWindow),
		},
	}
}

// NormalizePort accepts both "8080" and ":8080".
func NormalizePort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
