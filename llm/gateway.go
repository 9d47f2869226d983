package llm

import (
	"context"
	"fmt"

	"github.com/pithiyakeval/shopify-ai-analytics/config"
)

// Gateway sends a prompt to a language model and returns the raw text
// response. Ask never fails: transport errors, timeouts and exhausted
// retries all collapse to an empty string, which the planning pipeline
// treats as a normal input.
type Gateway interface {
	Ask(ctx context.Context, prompt string) string
}

// asker is a single-attempt backend that may fail. The retry wrapper turns
// an asker into a Gateway.
type asker interface {
	ask(ctx context.Context, prompt string) (string, error)
}

// New selects a gateway backend from configuration. The "canned" backend is
// the default for environments where no model is available.
func New(cfg *config.Config) (Gateway, error) {
	switch cfg.LLMBackend {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("llm: GEMINI_API_KEY is required for the gemini backend")
		}
		return withRetry(newGemini(cfg.GeminiAPIKey, cfg.LLMModel, cfg.LLMTimeout), cfg.LLMMaxRetries), nil
	case "ollama":
		return withRetry(newOllama(cfg.LLMModel, cfg.LLMTimeout), cfg.LLMMaxRetries), nil
	case "canned":
		return CannedGateway{}, nil
	}
	return nil, fmt.Errorf("llm: unknown backend %q", cfg.LLMBackend)
}
