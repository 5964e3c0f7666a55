package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds everything the pipeline and its surfaces need. Values are
// resolved in order: built-in defaults, then the YAML config file, then
// environment variables.
type Config struct {
	// Credential for the generation API. Empty is allowed: generation then
	// degrades to placeholder output instead of failing.
	Credential string

	Generation GenerationConfig `yaml:"generation"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Paths      PathsConfig      `yaml:"paths"`
	Server     ServerConfig     `yaml:"server"`
}

// GenerationConfig configures the chat-completion backend.
type GenerationConfig struct {
	Provider       string `yaml:"provider" validate:"oneof=openrouter gemini"`
	Model          string `yaml:"model" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"min=1,max=300"`
}

// WhisperConfig configures the speech-to-text backend.
type WhisperConfig struct {
	Provider   string `yaml:"provider" validate:"oneof=whisper_cpp openai"`
	Model      string `yaml:"model" validate:"oneof=tiny base small medium large"`
	BinaryPath string `yaml:"binary_path"`
	ModelsDir  string `yaml:"models_dir"`
}

// PathsConfig holds filesystem locations.
type PathsConfig struct {
	DownloadDir string `yaml:"download_dir" validate:"required"`
	HistoryDB   string `yaml:"history_db" validate:"required"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string `yaml:"addr" validate:"required"`
	Environment string `yaml:"environment" validate:"oneof=development production"`
}

// Timeout returns the per-call generation timeout as a duration.
func (g GenerationConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// Default returns a Config with the built-in defaults applied.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Provider:       "openrouter",
			Model:          "mistralai/mistral-7b-instruct",
			TimeoutSeconds: 30,
		},
		Whisper: WhisperConfig{
			Provider: "whisper_cpp",
			Model:    "base",
		},
		Paths: PathsConfig{
			DownloadDir: "downloads",
			HistoryDB:   filepath.Join("data", "runs.db"),
		},
		Server: ServerConfig{
			Addr:        ":8080",
			Environment: "development",
		},
	}
}

// LoadFile overlays a YAML config file onto the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Env always wins.
func (c *Config) applyEnv() {
	if v := os.Getenv("GENERATION_PROVIDER"); v != "" {
		c.Generation.Provider = v
	}
	if v := os.Getenv("GENERATION_MODEL"); v != "" {
		c.Generation.Model = v
	}
	if v := os.Getenv("GENERATION_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Generation.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("WHISPER_PROVIDER"); v != "" {
		c.Whisper.Provider = v
	}
	if v := os.Getenv("WHISPER_MODEL"); v != "" {
		c.Whisper.Model = v
	}
	if v := os.Getenv("WHISPER_CPP_BINARY"); v != "" {
		c.Whisper.BinaryPath = v
	}
	if v := os.Getenv("WHISPER_CPP_MODELS_DIR"); v != "" {
		c.Whisper.ModelsDir = v
	}
	if v := os.Getenv("DOWNLOAD_DIR"); v != "" {
		c.Paths.DownloadDir = v
	}
	if v := os.Getenv("CCRAFT_DB_PATH"); v != "" {
		c.Paths.HistoryDB = v
	}
	if v := os.Getenv("CCRAFT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CCRAFT_ENV"); v != "" {
		c.Server.Environment = v
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load resolves the full configuration: .env file, YAML config, environment
// overrides and the generation credential.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := LoadFile(configFilePath())
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.Credential = ResolveCredential()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFilePath() string {
	if v := os.Getenv("CCRAFT_CONFIG"); v != "" {
		return v
	}
	return "config.yaml"
}
