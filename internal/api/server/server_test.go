package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/app/model"
	"github.com/zpeteman/content-repurposer/internal/app/pipeline"
	"github.com/zpeteman/content-repurposer/internal/app/source"
)

type fakeRunner struct {
	calls  int
	result *pipeline.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, req pipeline.Request, reporter pipeline.Reporter) (*pipeline.Result, error) {
	f.calls++
	return f.result, f.err
}

type fakeRunDAO struct {
	records []model.RunRecord
	err     error
}

func (f *fakeRunDAO) RecordRun(ctx context.Context, record *model.RunRecord) error { return nil }
func (f *fakeRunDAO) RecentRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	return f.records, f.err
}
func (f *fakeRunDAO) Close() error { return nil }

func newTestServer(runner *fakeRunner, dao *fakeRunDAO) *Server {
	return NewServer(Config{
		Addr:        ":0",
		Environment: "production",
	}, runner, dao, zap.NewNop())
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestCreateGeneration(t *testing.T) {
	runner := &fakeRunner{result: &pipeline.Result{
		Transcript: &model.Transcript{Text: "hello", Language: "en", Duration: 12.5},
		Content: model.GeneratedContent{
			model.PlatformInstagram: {"post one", "post two"},
		},
		Elapsed: 3 * time.Second,
	}}
	s := newTestServer(runner, &fakeRunDAO{})

	w := postJSON(t, s, "/api/v1/generations", map[string]interface{}{
		"source":      "https://youtube.com/watch?v=abc",
		"language":    "english",
		"post_counts": map[string]int{"instagram": 2},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Transcript struct {
			Text string `json:"text"`
		} `json:"transcript"`
		Posts     map[string][]string `json:"posts"`
		ElapsedMs int64               `json:"elapsed_ms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Transcript.Text)
	assert.Equal(t, []string{"post one", "post two"}, resp.Posts["instagram"])
	assert.Equal(t, int64(3000), resp.ElapsedMs)
	assert.Equal(t, 1, runner.calls)
}

func TestCreateGenerationInvalidLanguage(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestServer(runner, &fakeRunDAO{})

	w := postJSON(t, s, "/api/v1/generations", map[string]interface{}{
		"source":      "https://youtube.com/watch?v=abc",
		"language":    "klingon",
		"post_counts": map[string]int{"instagram": 1},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, runner.calls, "validation must reject before running the pipeline")
}

func TestCreateGenerationUnknownPlatform(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestServer(runner, &fakeRunDAO{})

	w := postJSON(t, s, "/api/v1/generations", map[string]interface{}{
		"source":      "https://youtube.com/watch?v=abc",
		"language":    "english",
		"post_counts": map[string]int{"myspace": 1},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, runner.calls)
}

func TestCreateGenerationMissingBodyFields(t *testing.T) {
	s := newTestServer(&fakeRunner{}, &fakeRunDAO{})

	w := postJSON(t, s, "/api/v1/generations", map[string]interface{}{
		"language": "english",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateGenerationDownloadFailure(t *testing.T) {
	runner := &fakeRunner{err: &source.DownloadError{URL: "https://youtube.com/watch?v=abc"}}
	s := newTestServer(runner, &fakeRunDAO{})

	w := postJSON(t, s, "/api/v1/generations", map[string]interface{}{
		"source":      "https://youtube.com/watch?v=abc",
		"language":    "english",
		"post_counts": map[string]int{"x": 1},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentRuns(t *testing.T) {
	dao := &fakeRunDAO{records: []model.RunRecord{
		{ID: 1, Source: "https://youtu.be/a", SourceKind: "url", Language: "english", Platforms: "x", PostCount: 1, CreatedAt: time.Now()},
	}}
	s := newTestServer(&fakeRunner{}, dao)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/recent", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Runs []struct {
			Source string `json:"source"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Runs, 1)
	assert.Equal(t, "https://youtu.be/a", resp.Runs[0].Source)
}

func TestRecentRunsBadLimit(t *testing.T) {
	s := newTestServer(&fakeRunner{}, &fakeRunDAO{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/recent?limit=boom", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeRunner{}, &fakeRunDAO{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(&fakeRunner{}, &fakeRunDAO{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
