package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath          string
	Env             string
	TranslationsDir string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		DBPath:          getEnv("TASKDESK_DB", "taskdesk.db"),
		Env:             getEnv("APP_ENV", "production"),
		TranslationsDir: getEnv("TASKDESK_TRANSLATIONS", "pkg/translator/translation"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
