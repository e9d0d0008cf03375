package redis

import (
	"testing"

	"podcheck-api/pkg/config"
)

// Note: most Redis behavior needs a live server and is covered by
// integration environments, not unit tests.

func TestNewRedisCache_EmptyAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}
