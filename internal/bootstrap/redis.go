package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects the unlock session store. An empty address
// disables it: the API still serves, gated rows just stay locked.
func OpenRedis(addr string) *redis.Client {
	if addr == "" {
		log.Println("REDIS_ADDR not set, unlock sessions disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: redis ping failed (%v), unlock will fail closed", err)
	}
	return client
}
