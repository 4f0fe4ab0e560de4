package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// buildProviderConfigs turns a comma-separated provider list into config
// entries, pulling API keys from the environment. Order in the flag is
// the fallback priority order.
func buildProviderConfigs(spec, modelName string) ([]model.ProviderConfig, error) {
	var configs []model.ProviderConfig
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}

		pc := model.ProviderConfig{Name: name, Model: modelName}
		switch name {
		case "openai":
			pc.APIKey = os.Getenv("OPENAI_API_KEY")
			if pc.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "deepseek":
			pc.APIKey = os.Getenv("DEEPSEEK_API_KEY")
			if pc.APIKey == "" {
				return nil, fmt.Errorf("DEEPSEEK_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			pc.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if pc.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "gemini", "google":
			pc.APIKey = os.Getenv("GEMINI_API_KEY")
			if pc.APIKey == "" {
				return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				pc.BaseURL = baseURL
			}
		default:
			return nil, fmt.Errorf("unknown provider: %s", name)
		}

		configs = append(configs, pc)
	}
	return configs, nil
}
