package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// UpstreamConfig points at the events API that owns all event and
// booking data.
type UpstreamConfig struct {
	BaseURL      string
	ServiceToken string
	Timeout      time.Duration
}

type RedisConfig struct {
	Addr        string
	SnapshotTTL time.Duration
}

type KafkaConfig struct {
	Brokers     []string
	GroupID     string
	ChangeTopic string
	Enabled     bool
}

type AuthConfig struct {
	OIDCIssuer string
	Enabled    bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8086"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Upstream: UpstreamConfig{
			BaseURL:      getEnv("EVENTS_API_URL", "http://localhost:8080"),
			ServiceToken: getEnv("EVENTS_API_TOKEN", ""),
			Timeout:      time.Duration(getEnvInt("EVENTS_API_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "localhost:6379"),
			SnapshotTTL: time.Duration(getEnvInt("SNAPSHOT_TTL_SECONDS", 60)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:     strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			GroupID:     getEnv("KAFKA_GROUP_ID", "dashboard-service"),
			ChangeTopic: getEnv("KAFKA_CHANGE_TOPIC", "dashly.events.changed"),
			Enabled:     getEnvBool("KAFKA_ENABLED", true),
		},
		Auth: AuthConfig{
			OIDCIssuer: getEnv("OIDC_ISSUER", ""),
			Enabled:    getEnvBool("AUTH_ENABLED", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
