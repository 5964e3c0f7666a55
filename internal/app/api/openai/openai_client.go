package openai

import (
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/zpeteman/content-repurposer/internal/config"
)

var (
	once      sync.Once
	singleton *openai.Client
)

// GetClient returns the shared OpenAI client used for remote whisper
// transcription, or nil when OPENAI_API_KEY is not configured.
func GetClient() *openai.Client {
	once.Do(func() {
		token := config.OpenAIKey()
		if token == "" {
			return
		}
		singleton = openai.NewClient(token)
	})

	return singleton
}
