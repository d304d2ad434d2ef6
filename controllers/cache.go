package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/redis/go-redis/v9"
)

func generateListingCacheKey(ownerID, status string) string {
	sum := sha256.Sum256([]byte(ownerID + ":" + status))
	return "items:" + hex.EncodeToString(sum[:])
}

// DeleteItemCache drops every cached listing response. Invoked after any
// write so stale lists are never served.
func DeleteItemCache(redisClient *redis.Client) {
	ctx := context.Background()
	const scanPattern = "items:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	_, execErr := pipe.Exec(ctx)

	if execErr != nil {
		log.Printf("Error executing pipeline for deleting %d listing cache keys: %v", len(keysToDelete), execErr)
	} else {
		log.Printf("Listing cache invalidated, deleted %d keys matching '%s'", len(keysToDelete), scanPattern)
	}
}
