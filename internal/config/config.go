package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session tokens
	JWTSecret    string
	TokenExpiry  time.Duration
	AuthProvider string // "local" or "hosted"

	// Hosted identity provider (read only when AuthProvider == "hosted")
	HostedJWKSURL  string
	HostedIssuer   string
	HostedAudience string

	// Startup seed account
	SeedEmail     string
	SeedPassword  string
	SeedFirstName string
	SeedLastName  string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "mamacare"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenExpiry:  parseDuration(getEnv("TOKEN_EXPIRY", "168h")),
		AuthProvider: getEnv("AUTH_PROVIDER", "local"),

		HostedJWKSURL:  getEnv("HOSTED_JWKS_URL", ""),
		HostedIssuer:   getEnv("HOSTED_ISSUER", ""),
		HostedAudience: getEnv("HOSTED_AUDIENCE", ""),

		SeedEmail:     getEnv("SEED_EMAIL", ""),
		SeedPassword:  getEnv("SEED_PASSWORD", ""),
		SeedFirstName: getEnv("SEED_FIRST_NAME", ""),
		SeedLastName:  getEnv("SEED_LAST_NAME", ""),

		Port:        getEnv("PORT", "4000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 168 * time.Hour
	}
	return d
}
