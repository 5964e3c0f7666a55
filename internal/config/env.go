package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; environment variables may be set
// system-wide instead.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// ResolveCredential returns the generation API credential. OPENROUTER_API_KEY
// takes precedence; OPENAI_API_KEY is accepted as a fallback since OpenRouter
// speaks the same protocol. An empty result means generation runs in
// placeholder mode.
func ResolveCredential() string {
	if key := strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

// OpenAIKey returns the key used for remote whisper transcription.
func OpenAIKey() string {
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}
