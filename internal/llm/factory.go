package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/feynman-labs/feynman/internal/config"
)

// Provider names accepted by the "provider" config key.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
)

// New constructs the configured provider client, wrapped with retries.
// A missing API key fails here, before any documents are fetched.
func New(ctx context.Context, s *config.Settings) (Client, error) {
	var (
		inner Client
		err   error
	)

	switch s.Provider {
	case ProviderAnthropic:
		inner, err = NewAnthropicClient(s.AnthropicAPIKey, s.AnthropicModel)
	case ProviderGemini:
		inner, err = NewGeminiClient(ctx, s.GeminiAPIKey, s.GeminiModel)
	case ProviderOpenAI:
		inner, err = NewOpenAIClient(s.OpenAIAPIKey, s.OpenAIModel, os.Getenv("OPENAI_BASE_URL"))
	default:
		return nil, fmt.Errorf("unknown provider %q (want %s, %s, or %s)",
			s.Provider, ProviderAnthropic, ProviderGemini, ProviderOpenAI)
	}
	if err != nil {
		return nil, fmt.Errorf("configuring %s provider: %w", s.Provider, err)
	}

	return WithRetry(inner), nil
}
