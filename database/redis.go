package database

import (
	"context"
	"log"

	"github.com/iternative/CTO-Lunches/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis connects to the optional settings cache. The app runs fine
// without it; Redis stays nil when unconfigured or unreachable.
func ConnectRedis() {
	if config.AppConfig.RedisURL == "" {
		return
	}

	opts, err := redis.ParseURL(config.AppConfig.RedisURL)
	if err != nil {
		log.Println("⚠️  Invalid REDIS_URL, running without cache:", err)
		return
	}

	Redis = redis.NewClient(opts)
	if _, err := Redis.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️  Redis not available, running without cache:", err)
		Redis = nil
		return
	}

	log.Println("✅ Redis connected successfully")
}
