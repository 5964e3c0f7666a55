package generator

import (
	"strings"

	"github.com/zpeteman/content-repurposer/internal/config"
)

// NewChatClient builds the configured chat backend. It returns nil when no
// credential is set, which the service turns into placeholder output.
func NewChatClient(cfg config.GenerationConfig, credential string) ChatClient {
	if strings.TrimSpace(credential) == "" {
		return nil
	}

	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(credential, cfg.Model)
	default:
		return NewOpenRouterClient(credential, cfg.Model)
	}
}
