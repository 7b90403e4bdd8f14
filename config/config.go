package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// Neo4j Configuration
	NEO4J_URI      string
	NEO4J_USERNAME string
	NEO4J_PASSWORD string
	NEO4J_DATABASE string
	// Redis Configuration
	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       string
	// Requisites cache
	REQUISITES_CACHE_TTL_MINUTES int
	// HTTP
	ALLOWED_ORIGINS string
	// Background jobs
	CRON_ENABLED bool
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	cacheTTL, err := strconv.Atoi(os.Getenv("REQUISITES_CACHE_TTL_MINUTES"))
	if err != nil {
		cacheTTL = 60
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	neo4jURI := os.Getenv("NEO4J_URI")
	if neo4jURI == "" {
		neo4jURI = "bolt://localhost:7687"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	// Cron jobs run unless explicitly disabled
	cronEnabled := os.Getenv("CRON_ENABLED") != "false"

	envVariables := &EnviornmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),
		PORT:         port,
		// Neo4j
		NEO4J_URI:      neo4jURI,
		NEO4J_USERNAME: os.Getenv("NEO4J_USERNAME"),
		NEO4J_PASSWORD: os.Getenv("NEO4J_PASSWORD"),
		NEO4J_DATABASE: os.Getenv("NEO4J_DATABASE"),
		// Redis
		REDIS_URL:      os.Getenv("REDIS_URL"),
		REDIS_PASSWORD: os.Getenv("REDIS_PASSWORD"),
		REDIS_DB:       os.Getenv("REDIS_DB"),
		// Requisites cache
		REQUISITES_CACHE_TTL_MINUTES: cacheTTL,
		// HTTP
		ALLOWED_ORIGINS: allowedOrigins,
		// Background jobs
		CRON_ENABLED: cronEnabled,
	}

	return envVariables, nil
}
