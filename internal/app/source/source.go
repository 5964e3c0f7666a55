package source

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zpeteman/content-repurposer/internal/app/model"
	"github.com/zpeteman/content-repurposer/internal/app/util/files"
)

// Acquirer turns a source reference into a local audio file path. The caller
// owns the returned file and is responsible for deleting it.
type Acquirer interface {
	Acquire(ctx context.Context, src model.SourceRef) (string, error)
}

// Service acquires audio from URLs (yt-dlp or media pages) and local files
// (pass-through or ffmpeg transcode). It writes exactly one file into the
// working directory per call and never cleans up after itself.
type Service struct {
	downloader *YtDlpDownloader
	pages      *PageExtractor
	workDir    string
	logger     *zap.Logger
}

// NewService creates a Service writing into workDir.
func NewService(downloader *YtDlpDownloader, pages *PageExtractor, workDir string, logger *zap.Logger) *Service {
	return &Service{
		downloader: downloader,
		pages:      pages,
		workDir:    workDir,
		logger:     logger,
	}
}

func (s *Service) Acquire(ctx context.Context, src model.SourceRef) (string, error) {
	if err := files.EnsureDir(s.workDir); err != nil {
		return "", err
	}

	switch src.Kind {
	case model.SourceKindURL:
		return s.acquireURL(ctx, src.Value)
	case model.SourceKindFile:
		return s.acquireLocal(src.Value)
	default:
		return "", fmt.Errorf("unknown source kind: %q", src.Kind)
	}
}

func (s *Service) acquireURL(ctx context.Context, rawURL string) (string, error) {
	if !IsHTTPURL(rawURL) {
		return "", &DownloadError{URL: rawURL, Err: fmt.Errorf("not a valid http(s) URL")}
	}

	if IsVideoSiteURL(rawURL) {
		if !s.downloader.IsAvailable() {
			return "", &DownloadError{URL: rawURL, Err: fmt.Errorf("yt-dlp not found on PATH")}
		}
		s.logger.Info("downloading audio via yt-dlp", zap.String("url", rawURL))
		return s.downloader.DownloadAudio(ctx, rawURL, s.workDir)
	}

	// Anything else is treated as a media page carrying an og:audio/og:video
	// reference.
	s.logger.Info("extracting media from page", zap.String("url", rawURL))
	return s.pages.Fetch(ctx, rawURL, s.workDir)
}

// IsHTTPURL reports whether raw parses as an absolute http(s) URL.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

var videoHosts = []string{
	"youtube.com",
	"youtu.be",
	"vimeo.com",
	"tiktok.com",
}

// IsVideoSiteURL reports whether raw points at a video host yt-dlp handles.
func IsVideoSiteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	for _, h := range videoHosts {
		if host == h {
			return true
		}
	}
	return false
}

// NewArtifactName returns a unique base name for an audio artifact.
func NewArtifactName() string {
	return uuid.New().String()
}

// TargetMP3Path builds the working-directory path for an artifact name.
func TargetMP3Path(workDir, name string) string {
	return filepath.Join(workDir, files.SanitizeFileName(name)+".mp3")
}

var _ Acquirer = (*Service)(nil)
