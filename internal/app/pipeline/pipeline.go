package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/app/api"
	"github.com/zpeteman/content-repurposer/internal/app/audio"
	"github.com/zpeteman/content-repurposer/internal/app/generator"
	"github.com/zpeteman/content-repurposer/internal/app/model"
	"github.com/zpeteman/content-repurposer/internal/app/source"
)

// Stage identifies one step of a run.
type Stage string

const (
	StageAcquire    Stage = "acquire"
	StageTranscribe Stage = "transcribe"
	StageGenerate   Stage = "generate"
	StagePresent    Stage = "present"
)

// Stages lists the pipeline stages in execution order.
var Stages = []Stage{StageAcquire, StageTranscribe, StageGenerate, StagePresent}

// Reporter receives stage progress. Implementations render it for a terminal,
// a TUI, or discard it.
type Reporter interface {
	StageStart(stage Stage, detail string)
	StageDone(stage Stage)
	StageFailed(stage Stage, err error)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) StageStart(Stage, string) {}
func (NopReporter) StageDone(Stage)          {}
func (NopReporter) StageFailed(Stage, error) {}

// RunRecorder persists run metadata. Recording failures never fail a run.
type RunRecorder interface {
	RecordRun(ctx context.Context, record *model.RunRecord) error
}

// Request is one full pipeline invocation.
type Request struct {
	Source     model.SourceRef
	Language   string
	PostCounts model.PostCounts
}

// Result carries everything a surface needs to present a finished run.
type Result struct {
	Transcript *model.Transcript
	Content    model.GeneratedContent
	Elapsed    time.Duration
}

// Pipeline drives a run through its four stages: acquire the audio,
// transcribe it, generate posts, present. Any stage failure aborts the
// remaining stages. The audio artifact is removed exactly once on every exit
// path; removal of a file that was never created is a no-op.
type Pipeline struct {
	acquirer    source.Acquirer
	transcriber api.Transcriber
	generator   *generator.Service
	runs        RunRecorder
	logger      *zap.Logger

	// removeFile is swapped in tests to observe cleanup.
	removeFile func(string) error
}

// New creates a Pipeline. runs may be nil to disable history recording.
func New(acquirer source.Acquirer, transcriber api.Transcriber, gen *generator.Service, runs RunRecorder, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		acquirer:    acquirer,
		transcriber: transcriber,
		generator:   gen,
		runs:        runs,
		logger:      logger,
		removeFile:  os.Remove,
	}
}

// Run executes one request. reporter may be nil.
func (p *Pipeline) Run(ctx context.Context, req Request, reporter Reporter) (*Result, error) {
	if reporter == nil {
		reporter = NopReporter{}
	}
	started := time.Now()

	var audioPath string
	defer func() {
		p.cleanup(audioPath)
	}()

	reporter.StageStart(StageAcquire, req.Source.Value)
	audioPath, err := p.acquirer.Acquire(ctx, req.Source)
	if err != nil {
		reporter.StageFailed(StageAcquire, err)
		p.record(ctx, req, audioPath, err)
		return nil, fmt.Errorf("source acquisition failed: %w", err)
	}
	reporter.StageDone(StageAcquire)

	reporter.StageStart(StageTranscribe, filepath.Base(audioPath))
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		reporter.StageFailed(StageTranscribe, err)
		p.record(ctx, req, audioPath, err)
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	reporter.StageDone(StageTranscribe)

	reporter.StageStart(StageGenerate, req.Language)
	content, err := p.generator.Generate(ctx, generator.Request{
		Transcript: transcript.Text,
		Language:   req.Language,
		PostCounts: req.PostCounts,
	})
	if err != nil {
		reporter.StageFailed(StageGenerate, err)
		p.record(ctx, req, audioPath, err)
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	reporter.StageDone(StageGenerate)

	reporter.StageStart(StagePresent, "")
	p.record(ctx, req, audioPath, nil)
	reporter.StageDone(StagePresent)

	return &Result{
		Transcript: transcript,
		Content:    content,
		Elapsed:    time.Since(started),
	}, nil
}

// cleanup removes the audio artifact. A missing file is fine; any other
// removal failure is logged and swallowed.
func (p *Pipeline) cleanup(audioPath string) {
	if audioPath == "" {
		return
	}
	if err := p.removeFile(audioPath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("failed to remove audio artifact",
			zap.String("path", audioPath),
			zap.Error(err))
	}
}

// record stores run metadata. It never persists transcript or post text.
func (p *Pipeline) record(ctx context.Context, req Request, audioPath string, runErr error) {
	if p.runs == nil {
		return
	}

	record := &model.RunRecord{
		Source:        req.Source.Value,
		SourceKind:    string(req.Source.Kind),
		AudioFileName: filepath.Base(audioPath),
		Language:      strings.ToLower(strings.TrimSpace(req.Language)),
		Platforms:     platformsSummary(req.PostCounts),
		PostCount:     totalRequested(req.PostCounts),
		CreatedAt:     time.Now(),
	}
	if audioPath == "" {
		record.AudioFileName = ""
	}
	if runErr != nil {
		record.HasError = 1
		record.ErrorMessage = runErr.Error()
	}
	if audioPath != "" {
		if duration, err := audio.GetAudioDuration(audioPath); err == nil {
			record.AudioDuration = duration
		}
	}

	if err := p.runs.RecordRun(ctx, record); err != nil {
		p.logger.Warn("failed to record run history", zap.Error(err))
	}
}

func platformsSummary(counts model.PostCounts) string {
	names := make([]string, 0, len(counts))
	for platform, count := range counts {
		if count > 0 {
			names = append(names, string(platform))
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func totalRequested(counts model.PostCounts) int {
	total := 0
	for _, count := range counts {
		if count > 0 {
			total += count
		}
	}
	return total
}
