package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
	CORS     CORSConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
	// BootstrapKey lets the first hospital be created before any admin
	// account exists. Empty disables the bootstrap path.
	BootstrapKey string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// defaultTokenTTL is used when JWT_EXPIRE is unset or malformed.
const defaultTokenTTL = 720 * time.Hour

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "hospital_directory"),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "your-secret-key"),
			TokenTTL: parseDuration(getEnv("JWT_EXPIRE", "720h")),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			GinMode:      getEnv("GIN_MODE", "debug"),
			BootstrapKey: getEnv("BOOTSTRAP_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a token lifetime. A malformed value must never stop
// the server from issuing tokens, so it falls back to the default.
func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Warning: Invalid duration format '%s', using default %s", s, defaultTokenTTL)
		return defaultTokenTTL
	}
	return duration
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
