package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port          string
	CSVPath       string
	DBPath        string
	WatchCSV      bool
	RateLimit     int // requests per window per client IP
	RateWindowSec int
}

// Load reads configuration from the environment, with an optional .env
// file for local development. Missing values fall back to defaults.
func Load() *Config {
	// best effort: absence of a .env file is not an error
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	csvPath := os.Getenv("CSV_PATH")
	if csvPath == "" {
		csvPath = "./data/hour_cleaned.csv"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/urbanwheels.db"
	}

	return &Config{
		Port:          port,
		CSVPath:       csvPath,
		DBPath:        dbPath,
		WatchCSV:      envBool("WATCH_CSV", false),
		RateLimit:     envInt("RATE_LIMIT", 120),
		RateWindowSec: envInt("RATE_WINDOW_SEC", 60),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
