package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// PlaceholderUnavailable is returned for every requested post when no
// generation credential is configured.
const PlaceholderUnavailable = "Content generation unavailable"

// MaxPostsPerPlatform caps how many posts a single run may request for one
// platform.
const MaxPostsPerPlatform = 5

// DefaultTimeout bounds each individual chat completion call.
const DefaultTimeout = 30 * time.Second

// ChatClient performs one chat completion. Implementations exist for
// OpenRouter and Gemini; a nil client means no credential is configured.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Request describes one content generation batch.
type Request struct {
	Transcript string
	Language   string
	PostCounts model.PostCounts
}

// Service turns a transcript into per-platform social media posts.
type Service struct {
	client  ChatClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewService creates a generation service. client may be nil, in which case
// every post degrades to a placeholder without touching the network.
func NewService(client ChatClient, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, timeout: timeout, logger: logger}
}

// Generate produces posts for each platform with a non-zero count. Platforms
// requested with a zero count are omitted from the result entirely.
//
// Generation failures are per-post: a failed call contributes a placeholder
// entry describing the failure and the batch continues. Only validation
// problems abort the whole request.
func (s *Service) Generate(ctx context.Context, req Request) (model.GeneratedContent, error) {
	language := strings.ToLower(strings.TrimSpace(req.Language))
	if err := s.validate(language, req.PostCounts); err != nil {
		return nil, err
	}

	requested := lo.Filter(model.SupportedPlatforms, func(p model.Platform, _ int) bool {
		count, ok := req.PostCounts[p]
		return ok && count > 0
	})

	result := make(model.GeneratedContent, len(requested))

	if s.client == nil {
		s.logger.Warn("no generation credential configured, using placeholder content")
		for _, platform := range requested {
			count := req.PostCounts[platform]
			result[platform] = lo.Times(count, func(int) string { return PlaceholderUnavailable })
			postsGenerated.WithLabelValues(string(platform), outcomePlaceholder).Add(float64(count))
		}
		return result, nil
	}

	systemPrompt := languageSystemPrompts[language]
	for _, platform := range requested {
		userPrompt := fmt.Sprintf(platformPrompts[platform], req.Transcript)
		count := req.PostCounts[platform]
		posts := make([]string, 0, count)

		for i := 0; i < count; i++ {
			text, err := s.completeOne(ctx, systemPrompt, userPrompt)
			if err != nil {
				s.logger.Error("content generation failed",
					zap.String("platform", string(platform)),
					zap.Int("post", i+1),
					zap.Error(err))
				posts = append(posts, fmt.Sprintf("Content generation failed: %v", err))
				postsGenerated.WithLabelValues(string(platform), outcomeFailure).Inc()
				continue
			}
			posts = append(posts, text)
			postsGenerated.WithLabelValues(string(platform), outcomeSuccess).Inc()
		}

		result[platform] = posts
	}

	return result, nil
}

func (s *Service) completeOne(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(callCtx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *Service) validate(language string, counts model.PostCounts) error {
	if !IsSupportedLanguage(language) {
		return &ValidationError{
			Field: "language",
			Value: language,
			Msg:   fmt.Sprintf("supported languages: %s", strings.Join(SupportedLanguages(), ", ")),
		}
	}

	for platform, count := range counts {
		if !model.IsValidPlatform(platform) {
			return &ValidationError{
				Field: "platform",
				Value: string(platform),
				Msg:   "unknown platform",
			}
		}
		if count < 0 || count > MaxPostsPerPlatform {
			return &ValidationError{
				Field: "post count",
				Value: fmt.Sprintf("%s=%d", platform, count),
				Msg:   fmt.Sprintf("must be between 0 and %d", MaxPostsPerPlatform),
			}
		}
	}

	return nil
}
