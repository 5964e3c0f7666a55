package repository

import (
	"context"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// RunDAO persists run metadata. Transcript text and generated posts are
// deliberately not part of this interface; only metadata is ever stored.
type RunDAO interface {
	RecordRun(ctx context.Context, record *model.RunRecord) error
	RecentRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
	Close() error
}
