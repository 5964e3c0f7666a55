package api

import (
	"context"
	"fmt"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// Transcriber converts one audio file into a transcript. Implementations make
// a single attempt; retries are the caller's problem and currently nobody's.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*model.Transcript, error)
}

// TranscriptionError wraps any failure of the underlying speech-to-text
// engine. It aborts the whole run.
type TranscriptionError struct {
	Path string
	Err  error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed for %s: %v", e.Path, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }
