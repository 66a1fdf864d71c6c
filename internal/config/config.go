package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// app config, mostly AI provider and collaborator related
type Config struct {
	Provider string

	SessionTTL       time.Duration
	FeedbackCacheTTL time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	SpeechSampleRateHertz int
	SpeechLanguageCode    string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:              getEnvOrDefault("AI_PROVIDER", "gemini"),
		SessionTTL:            getEnvDuration("INTERVIEW_SESSION_TTL", time.Hour),
		FeedbackCacheTTL:      getEnvDuration("FEEDBACK_CACHE_TTL", 15*time.Minute),
		SMTPHost:              getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:              getEnvInt("SMTP_PORT", 587),
		SMTPUser:              os.Getenv("EMAIL_USER"),
		SMTPPass:              os.Getenv("EMAIL_PASS"),
		SMTPFrom:              os.Getenv("EMAIL_FROM"),
		SpeechSampleRateHertz: getEnvInt("SPEECH_SAMPLE_RATE_HERTZ", 16000),
		SpeechLanguageCode:    getEnvOrDefault("SPEECH_LANGUAGE_CODE", "en-US"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
