package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for consensus-odds-service
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ProviderConfig holds odds feed provider configuration
type ProviderConfig struct {
	BaseURL      string
	APIKey       string
	Regions      string // comma-separated provider regions, e.g. "eu"
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// RedisConfig holds feed snapshot cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// KafkaConfig holds record publisher configuration
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string // Topic to publish assembled records to
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("provider.base_url", "https://api.the-odds-api.com")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.regions", "eu")
	v.SetDefault("provider.timeout", 10*time.Second)
	v.SetDefault("provider.max_retries", 3)
	v.SetDefault("provider.retry_backoff", 500*time.Millisecond)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("kafka.enabled", true)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "consensus_odds_records")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("CONSENSUS_ODDS")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Provider.APIKey == "" {
		return nil, fmt.Errorf("provider.api_key is required (CONSENSUS_ODDS_PROVIDER_API_KEY)")
	}

	return &config, nil
}
