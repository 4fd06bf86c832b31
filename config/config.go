package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// JWT Configuration
	SecretKey                  string
	AccessTokenExpireMinutes   int
	RefreshTokenExpireMinutes  int
	// External AI matching service
	AIMatchURL            string
	AIMatchTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// JWT Configuration
		SecretKey:                 getEnv("SECRET_KEY", ""),
		AccessTokenExpireMinutes:  getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenExpireMinutes: getEnvInt("REFRESH_TOKEN_EXPIRE_MINUTES", 7*24*60),
		// AI matching service; the timeout is deliberately generous, agentic
		// screening of a candidate batch can take minutes
		AIMatchURL:            getEnv("AI_MATCH_URL", "http://127.0.0.1:8001/agentic-screen"),
		AIMatchTimeoutSeconds: getEnvInt("AI_MATCH_TIMEOUT_SECONDS", 300),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SecretKey == "" {
		log.Println("WARNING: SECRET_KEY is missing. Tokens cannot be issued or verified.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
