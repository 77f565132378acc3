package config

import (
	"log"
	"net"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration values loaded from environment
// variables. The value is built once at startup and passed into the server
// by construction; nothing mutates it afterwards.
type Config struct {
	HTTPHost     string // listen host
	HTTPPort     string // listen port
	DatabasePath string // SQLite database file
	StaticDir    string // directory served under / and /static/
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
// Every value has a default, so an empty environment yields a working
// local setup.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only.")
	}

	cfg := &Config{
		HTTPHost:     getEnv("HTTP_HOST", "localhost"),
		HTTPPort:     getEnv("HTTP_PORT", "8765"),
		DatabasePath: getEnv("DATABASE_PATH", "messages.db"),
		StaticDir:    getEnv("STATIC_DIR", "static"),
	}

	log.Printf("Loaded config: Host=%s, Port=%s, Database=%s, StaticDir=%s",
		cfg.HTTPHost, cfg.HTTPPort, cfg.DatabasePath, cfg.StaticDir)

	return cfg, nil
}

// ListenAddr returns the host:port the server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
