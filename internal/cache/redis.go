package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AudioCache stores synthesized audio keyed by a hash of the request
// parameters. A nil *AudioCache is valid and caches nothing, so callers
// don't branch on whether redis is configured.
type AudioCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAudioCache wraps a redis client. ttl bounds how long entries live.
func NewAudioCache(client *redis.Client, ttl time.Duration) *AudioCache {
	return &AudioCache{client: client, ttl: ttl}
}

// Key derives a stable cache key from everything that affects the audio.
func Key(engine, language, voice string, speed float64, text string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s|%g|%s", engine, language, voice, speed, text))
	return "tts:audio:" + hex.EncodeToString(sum[:])
}

// Get returns cached audio bytes, or nil on miss or redis error.
func (c *AudioCache) Get(ctx context.Context, key string) []byte {
	if c == nil {
		return nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

// Set stores audio bytes; failures are ignored, the cache is best-effort.
func (c *AudioCache) Set(ctx context.Context, key string, audio []byte) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, audio, c.ttl)
}
