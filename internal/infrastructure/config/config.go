package config

import (
	"fmt"
	"os"
	"time"
)

// Config concentra tudo que vem do ambiente, resolvido uma única vez na
// partida do processo e passado explicitamente aos componentes. Nenhum
// outro lugar lê variáveis de ambiente.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTExpiresIn  time.Duration
	AdminUsername string
	AdminPassword string
	AllowOrigins  string
}

func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not defined in the environment")
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be defined in the environment")
	}

	expiresIn := 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
		}
		expiresIn = parsed
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	allowOrigins := os.Getenv("ALLOW_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}

	return &Config{
		Port:          port,
		DatabaseURL:   dbURL,
		JWTSecret:     jwtSecret,
		JWTExpiresIn:  expiresIn,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
		AllowOrigins:  allowOrigins,
	}, nil
}
