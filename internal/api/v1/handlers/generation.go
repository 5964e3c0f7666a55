package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/zpeteman/content-repurposer/internal/api/errors"
	"github.com/zpeteman/content-repurposer/internal/api/middleware"
	"github.com/zpeteman/content-repurposer/internal/api/v1/dto"
	"github.com/zpeteman/content-repurposer/internal/app/api"
	"github.com/zpeteman/content-repurposer/internal/app/generator"
	"github.com/zpeteman/content-repurposer/internal/app/pipeline"
	"github.com/zpeteman/content-repurposer/internal/app/source"
)

// PipelineRunner executes one full run. Satisfied by *pipeline.Pipeline.
type PipelineRunner interface {
	Run(ctx context.Context, req pipeline.Request, reporter pipeline.Reporter) (*pipeline.Result, error)
}

// GenerationHandler serves content generation requests.
type GenerationHandler struct {
	runner PipelineRunner
}

func NewGenerationHandler(runner PipelineRunner) *GenerationHandler {
	return &GenerationHandler{runner: runner}
}

// Create runs the pipeline for the submitted source and returns the
// generated posts.
func (h *GenerationHandler) Create(c *gin.Context) {
	var req dto.GenerationRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.runner.Run(c.Request.Context(), pipeline.Request{
		Source:     req.SourceRef(source.IsHTTPURL),
		Language:   req.Language,
		PostCounts: req.Counts(),
	}, nil)
	if err != nil {
		middleware.HandleError(c, mapPipelineError(err))
		return
	}

	posts := make(map[string][]string, len(result.Content))
	for platform, texts := range result.Content {
		posts[string(platform)] = texts
	}

	c.JSON(http.StatusOK, dto.GenerationResponse{
		Transcript: dto.TranscriptInfo{
			Text:     result.Transcript.Text,
			Language: result.Transcript.Language,
			Duration: result.Transcript.Duration,
		},
		Posts:     posts,
		ElapsedMs: result.Elapsed.Milliseconds(),
	})
}

// mapPipelineError translates stage failures into API error kinds. Internal
// detail stays in the logs; clients get a readable summary.
func mapPipelineError(err error) *apierrors.APIError {
	var verr *generator.ValidationError
	if errors.As(err, &verr) {
		return apierrors.NewValidationError(verr.Error(), nil)
	}

	var derr *source.DownloadError
	if errors.As(err, &derr) {
		return apierrors.NewBadRequestError("could not download the requested media")
	}

	var cerr *source.ConversionError
	if errors.As(err, &cerr) {
		return apierrors.NewBadRequestError("could not convert the source to audio")
	}

	var terr *api.TranscriptionError
	if errors.As(err, &terr) {
		return apierrors.NewServiceUnavailableError("transcription failed")
	}

	return apierrors.NewInternalError("pipeline run failed")
}
