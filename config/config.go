package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// LLM extraction settings.
	GeminiAPIKey   string  `mapstructure:"GEMINI_API_KEY"`
	LLMModel       string  `mapstructure:"LLM_MODEL"`
	LLMTemperature float64 `mapstructure:"LLM_TEMPERATURE"`

	// Position catalog service.
	CatalogAPIURL         string `mapstructure:"CATALOG_API_URL"`
	CatalogTimeoutSeconds int    `mapstructure:"CATALOG_TIMEOUT_SECONDS"`

	// Redis configuration (agent session cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Google Cloud credentials for speech-to-text.
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("LLM_TEMPERATURE", 0.7)
	viper.SetDefault("CATALOG_API_URL", "https://devapi-app.showphaze.com")
	viper.SetDefault("CATALOG_TIMEOUT_SECONDS", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
