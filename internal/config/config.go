package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the binaries need from the environment. The admin
// notification address is injected here rather than hardcoded next to the
// email templates.
type Config struct {
	HTTPPort      string
	AdminEmail    string
	KafkaBrokers  []string
	KafkaTopic    string
	SweepInterval time.Duration

	dbHost     string
	dbPort     int
	dbUser     string
	dbPassword string
	dbName     string
}

// Load reads .env (walking up from the working directory, falling back to
// .example.env) and assembles the config from environment variables.
func Load() (*Config, error) {
	loadEnv()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "9000"),
		AdminEmail:    os.Getenv("ADMIN_NOTIFICATION_EMAIL"),
		KafkaBrokers:  splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:    getEnv("KAFKA_NOTIFICATIONS_TOPIC", "claimit.notifications"),
		SweepInterval: 24 * time.Hour,

		dbHost:     getEnv("DB_HOST", "localhost"),
		dbUser:     os.Getenv("POSTGRES_USER"),
		dbPassword: os.Getenv("POSTGRES_PASSWORD"),
		dbName:     os.Getenv("POSTGRES_DB"),
	}
	cfg.dbPort, _ = strconv.Atoi(getEnv("DB_PORT", "5432"))

	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL %q: %w", raw, err)
		}
		cfg.SweepInterval = d
	}

	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_NOTIFICATION_EMAIL must be set")
	}

	return cfg, nil
}

// DSN renders the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.dbHost, c.dbPort, c.dbUser, c.dbPassword, c.dbName)
}

// splitList parses a comma-separated value, nil when unset. An empty broker
// list puts the main binary into console notification mode.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("config: cannot determine working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}
}
