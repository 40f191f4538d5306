package narrative

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient is the TextClient backed by the Gemini API.
type GeminiClient struct {
	client      *genai.Client
	temperature float32
}

func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrDisabled
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, temperature: cfg.Temperature}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		return "", fmt.Errorf("%w: model name cannot be empty", ErrServiceFatal)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrServiceFatal)
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: genai.Ptr(c.temperature)},
	)
	if err != nil {
		return "", classifyError(err)
	}
	if err := validateResponse(result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceFatal, err)
	}
	return result.Text(), nil
}

func classifyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return fmt.Errorf("%w: %v", ErrServiceFatal, err)
	}

	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", ErrServiceFatal, err)
}

func validateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return errors.New("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return errors.New("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return errors.New("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return errors.New("no parts in content")
	}
	return nil
}
