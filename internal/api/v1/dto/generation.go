package dto

import (
	"fmt"
	"strings"

	"github.com/zpeteman/content-repurposer/internal/api/errors"
	"github.com/zpeteman/content-repurposer/internal/app/generator"
	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// GenerationRequest is the body of POST /api/v1/generations.
type GenerationRequest struct {
	// Source is a media URL or a local file path on the server host.
	Source     string         `json:"source" binding:"required"`
	Language   string         `json:"language" binding:"required"`
	PostCounts map[string]int `json:"post_counts" binding:"required"`
}

// Validate applies the domain rules struct tags cannot express.
func (r *GenerationRequest) Validate() error {
	fields := make(map[string]string)

	if !generator.IsSupportedLanguage(strings.ToLower(strings.TrimSpace(r.Language))) {
		fields["language"] = fmt.Sprintf("must be one of: %s", strings.Join(generator.SupportedLanguages(), ", "))
	}

	for name, count := range r.PostCounts {
		if !model.IsValidPlatform(model.Platform(name)) {
			fields["post_counts"] = fmt.Sprintf("unknown platform %q", name)
			break
		}
		if count < 0 || count > generator.MaxPostsPerPlatform {
			fields["post_counts"] = fmt.Sprintf("count for %s must be between 0 and %d", name, generator.MaxPostsPerPlatform)
			break
		}
	}

	if len(fields) > 0 {
		return errors.NewValidationError("Validation failed", fields)
	}
	return nil
}

// SourceRef converts the request's source string into a tagged reference.
// HTTP(S) strings are URLs; everything else is treated as a local path.
func (r *GenerationRequest) SourceRef(isURL func(string) bool) model.SourceRef {
	if isURL(r.Source) {
		return model.URLSource(r.Source)
	}
	return model.FileSource(r.Source)
}

// Counts converts the request's post counts into the domain type.
func (r *GenerationRequest) Counts() model.PostCounts {
	counts := make(model.PostCounts, len(r.PostCounts))
	for name, count := range r.PostCounts {
		counts[model.Platform(name)] = count
	}
	return counts
}

// TranscriptInfo carries transcript metadata in responses.
type TranscriptInfo struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration_seconds,omitempty"`
}

// GenerationResponse is the body returned for a completed run.
type GenerationResponse struct {
	Transcript TranscriptInfo      `json:"transcript"`
	Posts      map[string][]string `json:"posts"`
	ElapsedMs  int64               `json:"elapsed_ms"`
}
