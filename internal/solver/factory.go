package solver

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a Provider from configuration, wrapped with logging and
// retry middleware (caller -> retry -> logging -> base).
func New(ctx context.Context, cfg Config, logger *log.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		})
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown solver provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, logger), cfg.Retry), nil
}
