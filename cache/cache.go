package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"complaint-service-server/config"
)

// Client is nil when REDIS_ADDR is unset; every helper treats a nil client
// as a cache miss so the server runs without redis.
var Client *redis.Client

// Initialize connects to redis when configured. A connection failure is not
// fatal, the server just runs uncached.
func Initialize() {
	cfg := config.AppConfig.Redis
	if cfg.Addr == "" {
		log.Println("Redis not configured, dashboard caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("❌ Redis ping failed, caching disabled: %v", err)
		return
	}

	Client = client
	log.Println("✅ Connected to redis")
}

// GetJSON loads a cached value into dest. Returns false on miss or when
// redis is unavailable.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	raw, err := Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetJSON stores a value with a TTL. Failures are logged and ignored.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("❌ Redis set failed for %s: %v", key, err)
	}
}

// Invalidate drops cached keys after a write.
func Invalidate(ctx context.Context, keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("❌ Redis del failed: %v", err)
	}
}
