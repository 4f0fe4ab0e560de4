package llm

import (
	"fmt"
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// NewProvider creates a provider from its configuration entry
func NewProvider(config model.ProviderConfig) (Provider, error) {
	switch strings.ToLower(config.Name) {
	case "openai":
		return NewOpenAIProvider(config)

	case "deepseek":
		return NewDeepSeekProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "gemini", "google":
		return NewGeminiProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, fmt.Errorf("provider name is required")

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: openai, deepseek, anthropic, gemini, ollama)", config.Name)
	}
}

// BuildProviders constructs the fallback chain from configuration,
// preserving the configured priority order. A misconfigured entry is a
// startup error, not a skipped provider.
func BuildProviders(configs []model.ProviderConfig) ([]Provider, error) {
	providers := make([]Provider, 0, len(configs))
	for _, cfg := range configs {
		p, err := NewProvider(cfg)
		if err != nil {
			return nil, fmt.Errorf("provider %q: %w", cfg.Name, err)
		}
		providers = append(providers, p)
	}
	return providers, nil
}
