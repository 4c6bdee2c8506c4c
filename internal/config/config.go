package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	OwnerID      int64
	OperatorName string
	Port         int
	UsersFile    string
	Database     DatabaseConfig
}

// DatabaseConfig holds optional database connection settings. The
// registry falls back to the JSON snapshot file when no host is set.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		OperatorName: getEnv("OPERATOR_NAME", "the operator"),
		UsersFile:    getEnv("USERS_FILE", "users.json"),
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "relaybot"),
			User:     getEnv("DB_USER", "relaybot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	ownerID, err := strconv.ParseInt(os.Getenv("OWNER_ID"), 10, 64)
	if err != nil || ownerID == 0 {
		return nil, fmt.Errorf("OWNER_ID is required and must be a numeric user id")
	}
	cfg.OwnerID = ownerID

	port, err := strconv.Atoi(getEnv("PORT", "10000"))
	if err != nil {
		return nil, fmt.Errorf("PORT must be numeric: %w", err)
	}
	cfg.Port = port

	if cfg.Database.Host != "" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required when DB_HOST is set")
	}

	return cfg, nil
}

// UseDatabase reports whether the PostgreSQL registry store is configured
func (c *Config) UseDatabase() bool {
	return c.Database.Host != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
