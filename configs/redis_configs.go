package configs

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

func ConnectRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		// The feed cache is optional; Mongo stays the source of truth.
		log.Printf("Redis ping error: %v (feed cache disabled)", err)
		return nil
	}

	log.Println("Connected to Redis!")
	return client
}
