package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	Ctx         = context.Background()
)

func InitRedis() *redis.Client {
	redisOnce.Do(func() {
		db := 0
		if v := os.Getenv("REDIS_DB"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				log.Printf("Invalid REDIS_DB value %q, using 0", v)
			} else {
				db = parsed
			}
		}

		redisClient = redis.NewClient(&redis.Options{
			Addr:     os.Getenv("REDIS_ADD"),
			Password: os.Getenv("REDIS_PASS"),
			DB:       db,
		})

		if _, err := redisClient.Ping(Ctx).Result(); err != nil {
			log.Fatalf("❌ Failed to connect to Redis: %v", err)
		}
		log.Println("✅ Connected to Redis")
	})
	return redisClient
}
