package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process configuration read from the environment.
type Config struct {
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	StrictValidation bool
	ModelConfigPath  string
	OpenAI           OpenAIConfig
}

// OpenAIConfig holds the credentials and endpoint of the completion API.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "json")
	cfg.ModelConfigPath = getEnv("MODEL_CONFIG_PATH", "config/model_config.json")

	strict, err := parseBoolDefault(getEnv("STRICT_VALIDATION", ""), false)
	if err != nil {
		return Config{}, fmt.Errorf("parse STRICT_VALIDATION: %w", err)
	}
	cfg.StrictValidation = strict

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}

	cfg.OpenAI = OpenAIConfig{
		APIKey:  getEnv("OPENAI_API_KEY", ""),
		BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Timeout: timeout,
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseBoolDefault(value string, def bool) (bool, error) {
	if value == "" {
		return def, nil
	}
	return strconv.ParseBool(value)
}
