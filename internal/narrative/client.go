package narrative

import (
	"context"
	"errors"
)

var (
	// ErrRateLimited marks a transient refusal of the model (HTTP 429,
	// RESOURCE_EXHAUSTED). It is the only failure retried on the fallback
	// model.
	ErrRateLimited = errors.New("generative service rate limited")
	// ErrServiceFatal covers bad credentials, malformed or empty responses.
	ErrServiceFatal = errors.New("generative service failed")
	ErrTimeout      = errors.New("generative service timed out")
	ErrDisabled     = errors.New("generative service not configured")
)

// TextClient sends one prompt to one model and returns the raw text.
type TextClient interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}
