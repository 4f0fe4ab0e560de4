package llm

import (
	"testing"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   model.ProviderConfig
		wantName string
		wantErr  bool
	}{
		{"openai", model.ProviderConfig{Name: "openai", APIKey: "k"}, "openai", false},
		{"deepseek", model.ProviderConfig{Name: "deepseek", APIKey: "k"}, "deepseek", false},
		{"anthropic alias", model.ProviderConfig{Name: "claude", APIKey: "k"}, "anthropic", false},
		{"gemini alias", model.ProviderConfig{Name: "google", APIKey: "k"}, "gemini", false},
		{"ollama no key needed", model.ProviderConfig{Name: "ollama"}, "ollama", false},
		{"missing key", model.ProviderConfig{Name: "openai"}, "", true},
		{"unknown", model.ProviderConfig{Name: "watson"}, "", true},
		{"empty", model.ProviderConfig{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestBuildProviders_PreservesOrder(t *testing.T) {
	providers, err := BuildProviders([]model.ProviderConfig{
		{Name: "openai", APIKey: "k"},
		{Name: "ollama"},
	})
	if err != nil {
		t.Fatalf("BuildProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("got %d providers, want 2", len(providers))
	}
	if providers[0].Name() != "openai" || providers[1].Name() != "ollama" {
		t.Errorf("order = [%s, %s], want [openai, ollama]", providers[0].Name(), providers[1].Name())
	}
}

func TestBuildProviders_MisconfiguredEntryFails(t *testing.T) {
	if _, err := BuildProviders([]model.ProviderConfig{{Name: "anthropic"}}); err == nil {
		t.Fatal("expected startup error for missing API key")
	}
}
