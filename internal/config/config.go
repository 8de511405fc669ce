package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	BootstrapAdminName string
	BootstrapAdminMail string
	BootstrapAdminPass string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present. Missing keys fall back to defaults.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8081"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", "promohub-dev-secret"),
			TokenTTL:           getEnvDuration("TOKEN_TTL", 12*time.Hour),
			BootstrapAdminName: getEnv("BOOTSTRAP_ADMIN_NAME", "Master Admin"),
			BootstrapAdminMail: getEnv("BOOTSTRAP_ADMIN_EMAIL", "admin@promohub.local"),
			BootstrapAdminPass: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
