package narrative

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache stores model responses. Implementations must treat an unavailable
// backend as a miss.
type Cache interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
}

type cacheKeyInput struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

func CacheKey(model, prompt string) string {
	b, _ := json.Marshal(cacheKeyInput{Model: model, Prompt: prompt})
	sum := sha256.Sum256(b)
	return "narrative:" + hex.EncodeToString(sum[:])
}
