package whisper

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/zpeteman/content-repurposer/internal/app/api"
	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcribe uploads the audio file to whisper-1 and maps the verbose JSON
// response onto a Transcript.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, audioPath string) (*model.Transcript, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file not found %s: %w", audioPath, fs.ErrNotExist)
	}

	if rt.client == nil {
		return nil, &api.TranscriptionError{Path: audioPath, Err: fmt.Errorf("OPENAI_API_KEY not configured")}
	}

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, &api.TranscriptionError{Path: audioPath, Err: err}
	}

	transcript := &model.Transcript{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
	}
	for _, seg := range resp.Segments {
		transcript.Segments = append(transcript.Segments, model.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	return transcript, nil
}

var _ api.Transcriber = (*RemoteTranscriber)(nil)
