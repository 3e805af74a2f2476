package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	MongoURI  string
	MongoDB   string

	JWTSecret string
	JWTExpiry time.Duration

	BcryptCost int

	CORSOrigin string

	EmailProvider      string
	EmailFromAddress   string
	EmailFromName      string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

// Load loads configuration from environment variables. Outside production it
// first attempts to read a .env file; a missing file is not an error since
// production relies on system environment variables.
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
		Port:               os.Getenv("PORT"),
		MongoURI:           os.Getenv("MONGODB_URI"),
		MongoDB:            os.Getenv("MONGODB_DATABASE"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSOrigin:         os.Getenv("CORS_ORIGIN"),
		EmailProvider:      os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:          os.Getenv("SES_REGION"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "event-board"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "event-board-secret"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:4200"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}

	cfg.JWTExpiry = time.Hour
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", s, err)
		}
		cfg.JWTExpiry = d
	}

	cfg.BcryptCost = 10
	if s := os.Getenv("BCRYPT_COST"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", s, err)
		}
		cfg.BcryptCost = n
	}

	return cfg, nil
}
