package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/zpeteman/content-repurposer/internal/app/pipeline"
)

var stageLabels = map[pipeline.Stage]string{
	pipeline.StageAcquire:    "Acquiring audio",
	pipeline.StageTranscribe: "Transcribing",
	pipeline.StageGenerate:   "Generating posts",
	pipeline.StagePresent:    "Preparing output",
}

// StageReporter renders pipeline stages as one progress bar over the run.
type StageReporter struct {
	manager *Manager
	bar     *Bar
	out     io.Writer
}

// NewStageReporter creates a reporter writing to out (defaults to stderr).
func NewStageReporter(config Config) *StageReporter {
	out := config.Writer
	if out == nil {
		out = os.Stderr
	}

	manager := NewManager(config)
	return &StageReporter{
		manager: manager,
		bar:     manager.CreateBar(len(pipeline.Stages), "Run"),
		out:     out,
	}
}

func (r *StageReporter) StageStart(stage pipeline.Stage, detail string) {
	if r.manager.enabled {
		return
	}
	if detail != "" {
		fmt.Fprintf(r.out, "%s: %s\n", stageLabels[stage], detail)
		return
	}
	fmt.Fprintf(r.out, "%s...\n", stageLabels[stage])
}

func (r *StageReporter) StageDone(stage pipeline.Stage) {
	r.bar.Increment()
}

func (r *StageReporter) StageFailed(stage pipeline.Stage, err error) {
	r.bar.Complete()
	fmt.Fprintf(r.out, "%s failed: %v\n", stageLabels[stage], err)
}

// Close flushes and stops rendering.
func (r *StageReporter) Close() {
	r.bar.Complete()
	r.manager.Shutdown()
}

var _ pipeline.Reporter = (*StageReporter)(nil)
