package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	ErrMissingBotToken = errors.New("SLACK_BOT_TOKEN is required")
	ErrMissingAppToken = errors.New("SLACK_APP_TOKEN is required")
)

type Config struct {
	SlackBotToken  string
	SlackAppToken  string
	DefaultChannel string
	AppPort        string
	ReportHour     int
	ReportMinute   int
}

// LoadConfig reads configuration from the environment, with .env as a
// convenience for local runs. Missing Slack credentials are the only
// fatal condition.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		SlackBotToken:  os.Getenv("SLACK_BOT_TOKEN"),
		SlackAppToken:  os.Getenv("SLACK_APP_TOKEN"),
		DefaultChannel: getEnv("SLACK_CHANNEL_ID", "#general"),
		AppPort:        getEnv("APP_PORT", "3000"),
		ReportHour:     getEnvInt("REPORT_HOUR", 9),
		ReportMinute:   getEnvInt("REPORT_MINUTE", 0),
	}

	if cfg.SlackBotToken == "" {
		return nil, ErrMissingBotToken
	}
	if cfg.SlackAppToken == "" {
		return nil, ErrMissingAppToken
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
