package model

import "time"

// ProviderConfig configures a single AI provider. Order in the
// Providers slice is the fallback priority order.
type ProviderConfig struct {
	Name      string  `yaml:"name" json:"name"`             // openai, deepseek, anthropic, gemini, ollama
	Model     string  `yaml:"model" json:"model"`           // provider-specific model name
	APIKey    string  `yaml:"api_key,omitempty" json:"-"`   // never serialized to JSON
	BaseURL   string  `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout   int     `yaml:"timeout" json:"timeout"`       // seconds, per call
	MaxTokens int     `yaml:"max_tokens" json:"max_tokens"`
	RateLimit float64 `yaml:"rate_limit" json:"rate_limit"` // requests per second, 0 = unlimited
}

// Config is the process-wide immutable configuration, built once at
// startup and passed into constructors. Nothing mutates it per-request.
type Config struct {
	Providers []ProviderConfig `yaml:"providers" json:"providers"`

	Resolver struct {
		MaxSections    int     `yaml:"max_sections" json:"max_sections"`       // keyword matcher cap
		MinConfidence  float64 `yaml:"min_confidence" json:"min_confidence"`   // validator floor
		ReviewBelow    float64 `yaml:"review_below" json:"review_below"`       // needs-review threshold
		MinDescription int     `yaml:"min_description" json:"min_description"` // request validation
	} `yaml:"resolver" json:"resolver"`

	Cache struct {
		Enabled bool          `yaml:"enabled" json:"enabled"`
		TTL     time.Duration `yaml:"ttl" json:"ttl"`
	} `yaml:"cache" json:"cache"`

	Concurrency struct {
		Workers int `yaml:"workers" json:"workers"` // batch worker count
	} `yaml:"concurrency" json:"concurrency"`

	Server struct {
		Addr string `yaml:"addr" json:"addr"`
	} `yaml:"server" json:"server"`

	Output struct {
		Verbose bool `yaml:"verbose" json:"verbose"`
	} `yaml:"output" json:"output"`
}

// DefaultConfig returns sensible defaults: no providers configured (the
// resolver degrades to keyword-only mode), caching on, single-digit
// concurrency.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Resolver.MaxSections = 5
	cfg.Resolver.MinConfidence = 0.3
	cfg.Resolver.ReviewBelow = 0.5
	cfg.Resolver.MinDescription = 3
	cfg.Cache.Enabled = true
	cfg.Cache.TTL = 15 * time.Minute
	cfg.Concurrency.Workers = 4
	cfg.Server.Addr = ":8080"
	return cfg
}
