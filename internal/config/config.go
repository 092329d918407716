package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/HIMK322/TENET/internal/utils"
)

const AppName = "property-service"

type Config struct {
	AppName       string
	AppPort       string
	AppUrl        string
	DBUrl         string
	RunMigrations bool
	SeedDemoData  bool
}

func LoadConfig() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, reading environment directly")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		appUrl = "http://localhost:" + appPort
	}

	return &Config{
		AppName:       AppName,
		AppPort:       appPort,
		AppUrl:        appUrl,
		DBUrl:         dbURL,
		RunMigrations: os.Getenv("RUN_MIGRATIONS") != "false",
		SeedDemoData:  os.Getenv("SEED_DEMO_DATA") == "true",
	}
}
