package narrative

import "time"

// Config is passed to the generator and the Gemini client at construction.
type Config struct {
	APIKey        string
	PrimaryModel  string
	FallbackModel string
	Timeout       time.Duration
	Temperature   float32
	CacheTTL      time.Duration
}

func (c Config) withDefaults() Config {
	if c.PrimaryModel == "" {
		c.PrimaryModel = "gemini-2.5-flash"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 10 * time.Minute
	}
	return c
}

// models lists the models tried in order: primary, then fallback when it
// differs.
func (c Config) models() []string {
	out := []string{c.PrimaryModel}
	if c.FallbackModel != "" && c.FallbackModel != c.PrimaryModel {
		out = append(out, c.FallbackModel)
	}
	return out
}
