package dto

import (
	"time"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// RunResponse is one run history entry.
type RunResponse struct {
	ID            int       `json:"id"`
	Source        string    `json:"source"`
	SourceKind    string    `json:"source_kind"`
	AudioDuration int       `json:"audio_duration_seconds"`
	Language      string    `json:"language"`
	Platforms     string    `json:"platforms"`
	PostCount     int       `json:"post_count"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromRunRecord maps a stored record to its API shape.
func FromRunRecord(r model.RunRecord) RunResponse {
	return RunResponse{
		ID:            r.ID,
		Source:        r.Source,
		SourceKind:    r.SourceKind,
		AudioDuration: r.AudioDuration,
		Language:      r.Language,
		Platforms:     r.Platforms,
		PostCount:     r.PostCount,
		Error:         r.ErrorMessage,
		CreatedAt:     r.CreatedAt,
	}
}
