package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"http://example.com/audio", true},
		{"ftp://example.com/audio", false},
		{"/local/path.mp3", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHTTPURL(tt.url))
		})
	}
}

func TestIsVideoSiteURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"https://youtube.com/watch?v=abc", true},
		{"https://youtu.be/abc", true},
		{"https://m.youtube.com/watch?v=abc", true},
		{"https://vimeo.com/12345", true},
		{"https://www.tiktok.com/@user/video/1", true},
		{"https://example.com/podcast/episode-1", false},
		{"https://notyoutube.com/watch", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVideoSiteURL(tt.url))
		})
	}
}

func TestAcquireRejectsBadURL(t *testing.T) {
	svc := NewService(NewYtDlpDownloader(), NewPageExtractor(), t.TempDir(), zap.NewNop())

	_, err := svc.Acquire(context.Background(), model.URLSource("not-a-url"))
	require.Error(t, err)

	var dlErr *DownloadError
	assert.True(t, errors.As(err, &dlErr))
}

func TestAcquireVideoURLWithoutYtDlp(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // no yt-dlp anywhere on this PATH

	svc := NewService(NewYtDlpDownloader(), NewPageExtractor(), t.TempDir(), zap.NewNop())

	_, err := svc.Acquire(context.Background(), model.URLSource("https://youtu.be/abc"))
	require.Error(t, err)

	var dlErr *DownloadError
	require.True(t, errors.As(err, &dlErr))
	assert.Contains(t, dlErr.Error(), "yt-dlp")
}

func TestAcquireUnknownKind(t *testing.T) {
	svc := NewService(NewYtDlpDownloader(), NewPageExtractor(), t.TempDir(), zap.NewNop())

	_, err := svc.Acquire(context.Background(), model.SourceRef{Kind: "carrier-pigeon", Value: "x"})
	assert.Error(t, err)
}

func TestAcquireLocalAudioPassThrough(t *testing.T) {
	workDir := t.TempDir()
	svc := NewService(NewYtDlpDownloader(), NewPageExtractor(), workDir, zap.NewNop())

	src := filepath.Join(t.TempDir(), "talk.mp3")
	require.NoError(t, os.WriteFile(src, []byte("fake-mp3"), 0644))

	got, err := svc.Acquire(context.Background(), model.FileSource(src))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(workDir, "talk.mp3"), got)
	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "fake-mp3", string(data))

	// the original upload is untouched
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestAcquireLocalMissingFile(t *testing.T) {
	svc := NewService(NewYtDlpDownloader(), NewPageExtractor(), t.TempDir(), zap.NewNop())

	_, err := svc.Acquire(context.Background(), model.FileSource("/nonexistent/clip.mp4"))
	require.Error(t, err)

	var convErr *ConversionError
	assert.True(t, errors.As(err, &convErr))
}

func TestAcquireLocalUnsupportedExtension(t *testing.T) {
	svc := NewService(NewYtDlpDownloader(), NewPageExtractor(), t.TempDir(), zap.NewNop())

	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("text"), 0644))

	_, err := svc.Acquire(context.Background(), model.FileSource(src))
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Contains(t, convErr.Error(), "unsupported file extension")
}

func TestBuildAudioArgs(t *testing.T) {
	args := BuildAudioArgs("https://youtu.be/abc", "/tmp/out.%(ext)s")

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-f bestaudio/best")
	assert.Contains(t, joined, "--audio-format mp3")
	assert.Contains(t, joined, "-o /tmp/out.%(ext)s")
	assert.Equal(t, "https://youtu.be/abc", args[len(args)-1])
}

func TestParseDownloadedPath(t *testing.T) {
	output := []byte(`{"id":"abc","requested_downloads":[{"filepath":"/tmp/abc.mp3"}]}`)
	assert.Equal(t, "/tmp/abc.mp3", parseDownloadedPath(output))

	assert.Equal(t, "", parseDownloadedPath([]byte(`{"id":"abc"}`)))
	assert.Equal(t, "", parseDownloadedPath([]byte(`garbage`)))
}

func TestNewArtifactNameUnique(t *testing.T) {
	assert.NotEqual(t, NewArtifactName(), NewArtifactName())
}
