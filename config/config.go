package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string

	// SeedFile optionally points at a JSON file of form-shaped records;
	// empty means the built-in sample set.
	SeedFile string

	// SimulatedLatency is the fixed wait applied to every mutation.
	SimulatedLatency time.Duration

	// Notifier selects the notification sink: "log", "email", or "noop".
	Notifier   string
	AdminEmail string

	EmailProvider      string
	EmailFromAddress   string
	EmailFromName      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load loads configuration from environment variables, reading a .env file
// first when not in production. System environment variables always win.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		SeedFile:           os.Getenv("SEED_FILE"),
		Notifier:           os.Getenv("NOTIFIER"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		EmailProvider:      os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	// 800ms matches the fetch timer of the mock API this replaces.
	cfg.SimulatedLatency = 800 * time.Millisecond
	if s := os.Getenv("SIMULATED_LATENCY_MS"); s != "" {
		ms, err := strconv.Atoi(s)
		if err != nil || ms < 0 {
			log.Printf("Warning: invalid SIMULATED_LATENCY_MS %q, keeping default", s)
		} else {
			cfg.SimulatedLatency = time.Duration(ms) * time.Millisecond
		}
	}

	if cfg.Notifier == "" {
		cfg.Notifier = "log"
	}
	return cfg, nil
}
