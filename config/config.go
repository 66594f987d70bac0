package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	RedisURL            string
	InviteWebhookURL    string
	ContactWebhookURL   string
	QuarterlyWebhookURL string
	QuarterlyCron       string
	AdminPath           string
	StaticDir           string
	AppName             string
}

var AppConfig *Config

func Load() {
	godotenv.Load() // Load .env file if present

	AppConfig = &Config{
		Port:                getEnv("PORT", "3000"),
		DatabaseURL:         getEnv("DATABASE_URL", "postgresql://postgres:postgres@db:5432/rnrsvp"),
		RedisURL:            getEnv("REDIS_URL", ""),
		InviteWebhookURL:    getEnv("INVITE_WEBHOOK_URL", ""),
		ContactWebhookURL:   getEnv("CONTACT_WEBHOOK_URL", ""),
		QuarterlyWebhookURL: getEnv("QUARTERLY_WEBHOOK_URL", ""),
		QuarterlyCron:       getEnv("QUARTERLY_CRON", ""),
		AdminPath:           getEnv("ADMIN_PATH", "/admin"),
		StaticDir:           getEnv("STATIC_DIR", "public"),
		AppName:             getEnv("APP_NAME", "CTO-Lunches"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
