package repository

import (
	"context"
	"encoding/json"
	"time"

	"rooftop-server/models"

	"github.com/go-redis/redis/v8"
)

const feedCacheKey = "rooftop:feed"

type FeedCacheInterface interface {
	GetFeed() ([]models.Note, bool)
	SetFeed(notes []models.Note)
	Invalidate()
}

// NoteCache keeps the serialized feed (the full note list) in Redis.
// A nil cache or nil client disables caching; Mongo remains the source
// of truth either way.
type NoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNoteCache(client *redis.Client, ttl time.Duration) *NoteCache {
	return &NoteCache{client: client, ttl: ttl}
}

func (c *NoteCache) GetFeed() ([]models.Note, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(context.Background(), feedCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var notes []models.Note
	if err := json.Unmarshal([]byte(data), &notes); err != nil {
		return nil, false
	}
	return notes, true
}

func (c *NoteCache) SetFeed(notes []models.Note) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return
	}
	c.client.Set(context.Background(), feedCacheKey, data, c.ttl)
}

func (c *NoteCache) Invalidate() {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(context.Background(), feedCacheKey)
}
