package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	Database   DatabaseConfig
	Auth       AuthConfig
	MQ         MQConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// AuthConfig holds the token-signing settings. The secret and algorithm
// are loaded once at startup and never change for the process lifetime.
type AuthConfig struct {
	JWTSecret    string
	JWTAlgorithm string
	TokenTTLMins int
}

// MQConfig selects and configures the optional event broker.
// Backend is "rabbitmq", "pubsub", or empty to disable publishing.
type MQConfig struct {
	Backend  string
	RabbitMQ RabbitMQConfig
	PubSub   PubSubConfig
}

type RabbitMQConfig struct {
	URL             string
	PrefetchCount   int
	QueueDurable    bool
	QueueAutoDelete bool
}

type PubSubConfig struct {
	ProjectID          string
	CredentialsFile    string
	SubscriptionSuffix string
}

var supportedJWTAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// LoadConfig reads configuration from the environment (and a .env file in
// dev) and validates it. A missing or invalid value is a startup error.
func LoadConfig() (Config, error) {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	cfg := Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "restofront"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "restofront_db"),
			UseSSL:   getEnvBool("DB_USE_SSL", false),
		},
		Auth: AuthConfig{
			JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
			JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
			TokenTTLMins: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		},
		MQ: MQConfig{
			Backend: getEnv("MQ_BACKEND", ""),
			RabbitMQ: RabbitMQConfig{
				URL:             os.Getenv("RABBITMQ_URL"),
				PrefetchCount:   getEnvInt("RABBITMQ_PREFETCH", 0),
				QueueDurable:    getEnvBool("RABBITMQ_QUEUE_DURABLE", true),
				QueueAutoDelete: getEnvBool("RABBITMQ_QUEUE_AUTODELETE", false),
			},
			PubSub: PubSubConfig{
				ProjectID:          os.Getenv("PUBSUB_PROJECT_ID"),
				CredentialsFile:    os.Getenv("PUBSUB_CREDENTIALS_FILE"),
				SubscriptionSuffix: os.Getenv("PUBSUB_SUBSCRIPTION_SUFFIX"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if !supportedJWTAlgorithms[c.Auth.JWTAlgorithm] {
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", c.Auth.JWTAlgorithm)
	}
	if c.Auth.TokenTTLMins <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.Auth.TokenTTLMins)
	}
	switch c.MQ.Backend {
	case "", "rabbitmq", "pubsub":
	default:
		return fmt.Errorf("unsupported MQ_BACKEND %q", c.MQ.Backend)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(strings.TrimSpace(valueStr)) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return defaultValue
}
