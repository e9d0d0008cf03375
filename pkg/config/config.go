// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, fetching and directory settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Fetch contains feed fetching configuration
	Fetch FetchConfig

	// PodcastIndex contains directory API credentials
	PodcastIndex PodcastIndexConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// FeedTTL is the TTL for cached parsed feeds in seconds
	FeedTTL int
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// FetchConfig holds feed fetching configuration
type FetchConfig struct {
	// Timeout is the per-attempt HTTP timeout in seconds
	Timeout int

	// RelayURLs are relay endpoint templates with a %s placeholder for
	// the escaped target URL, tried in order after the direct attempt
	RelayURLs []string
}

// PodcastIndexConfig holds Podcast Index API credentials. Both fields
// empty disables directory lookups.
type PodcastIndexConfig struct {
	APIKey    string
	APISecret string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			FeedTTL: getEnvAsIntOrDefault("FEED_CACHE_TTL", 3600),
		},
		Fetch: FetchConfig{
			Timeout:   getEnvAsIntOrDefault("FETCH_TIMEOUT", 10),
			RelayURLs: splitList(os.Getenv("RELAY_URLS")),
		},
		PodcastIndex: PodcastIndexConfig{
			APIKey:    os.Getenv("PODCASTINDEX_API_KEY"),
			APISecret: os.Getenv("PODCASTINDEX_API_SECRET"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// splitList parses a comma-separated list, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Fetch.Timeout < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	for _, relay := range c.Fetch.RelayURLs {
		if !strings.Contains(relay, "%s") {
			return errors.New("relay URL must contain a %s placeholder: " + relay)
		}
	}

	if (c.PodcastIndex.APIKey == "") != (c.PodcastIndex.APISecret == "") {
		return errors.New("podcast index key and secret must be set together")
	}

	return nil
}
