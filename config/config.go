package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB (restaurant directory).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Fulfillment worker tuning.
	WorkerConcurrency int           `mapstructure:"WORKER_CONCURRENCY"`
	TaskMaxRetry      int           `mapstructure:"TASK_MAX_RETRY"`
	TaskTimeout       time.Duration `mapstructure:"TASK_TIMEOUT"`
	ExternalTimeout   time.Duration `mapstructure:"EXTERNAL_TIMEOUT"`

	// External collaborators.
	NLUEngineURL  string `mapstructure:"NLU_ENGINE_URL"`
	NLUBotName    string `mapstructure:"NLU_BOT_NAME"`
	SMSGatewayURL string `mapstructure:"SMS_GATEWAY_URL"`
	SMSGatewayKey string `mapstructure:"SMS_GATEWAY_KEY"`

	// Chat session retention.
	SessionTTLMins int `mapstructure:"SESSION_TTL_MINS"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "dinebot")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("WORKER_CONCURRENCY", 10)
	viper.SetDefault("TASK_MAX_RETRY", 5)
	viper.SetDefault("TASK_TIMEOUT", "2m")
	viper.SetDefault("EXTERNAL_TIMEOUT", "10s")
	viper.SetDefault("NLU_ENGINE_URL", "http://localhost:9090")
	viper.SetDefault("NLU_BOT_NAME", "DiningBot")
	viper.SetDefault("SMS_GATEWAY_URL", "")
	viper.SetDefault("SMS_GATEWAY_KEY", "")
	viper.SetDefault("SESSION_TTL_MINS", 30)

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
