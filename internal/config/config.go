package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	// CatalogAPIURL is the base URL the admin client talks to,
	// e.g. http://localhost:8080.
	CatalogAPIURL string
}

func LoadConfig() *Config {
	cfg := load()

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// LoadClientConfig reads only the settings the admin client needs; no
// database access is required on that side.
func LoadClientConfig() *Config {
	return load()
}

func load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		CatalogAPIURL: os.Getenv("CATALOG_API_URL"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.CatalogAPIURL == "" {
		cfg.CatalogAPIURL = "http://localhost:" + cfg.AppPort
	}

	return cfg
}
