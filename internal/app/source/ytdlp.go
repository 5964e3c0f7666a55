package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// YtDlpDownloader fetches best-available audio from video sites using the
// yt-dlp binary and has it transcoded to MP3 on the way down.
type YtDlpDownloader struct {
	binPath string
}

// NewYtDlpDownloader creates a downloader that locates yt-dlp on PATH.
func NewYtDlpDownloader() *YtDlpDownloader {
	return &YtDlpDownloader{}
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "yt-dlp.exe"
	}
	return "yt-dlp"
}

// BinaryPath returns the resolved yt-dlp path, or "" when not installed.
func (d *YtDlpDownloader) BinaryPath() string {
	if d.binPath != "" {
		return d.binPath
	}
	if path, err := exec.LookPath(binaryName()); err == nil {
		d.binPath = path
	}
	return d.binPath
}

// IsAvailable reports whether the yt-dlp binary could be located.
func (d *YtDlpDownloader) IsAvailable() bool {
	return d.BinaryPath() != ""
}

// DownloadAudio fetches url's audio into destDir as MP3 and returns the file
// path. The output name is a fresh artifact name, so concurrent runs never
// collide.
func (d *YtDlpDownloader) DownloadAudio(ctx context.Context, url string, destDir string) (string, error) {
	binPath := d.BinaryPath()
	if binPath == "" {
		return "", &DownloadError{URL: url, Err: fmt.Errorf("yt-dlp not found on PATH")}
	}

	name := NewArtifactName()
	outputTemplate := filepath.Join(destDir, name+".%(ext)s")

	args := BuildAudioArgs(url, outputTemplate)

	cmd := exec.CommandContext(ctx, binPath, args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", &DownloadError{URL: url, Err: fmt.Errorf("yt-dlp failed: %s", strings.TrimSpace(string(exitErr.Stderr)))}
		}
		return "", &DownloadError{URL: url, Err: err}
	}

	audioPath := filepath.Join(destDir, name+".mp3")
	if _, statErr := os.Stat(audioPath); statErr != nil {
		// yt-dlp wrote somewhere unexpected; fall back to its own report.
		if reported := parseDownloadedPath(output); reported != "" {
			audioPath = reported
		} else {
			return "", &DownloadError{URL: url, Err: fmt.Errorf("downloaded file not found: %w", statErr)}
		}
	}

	return audioPath, nil
}

// BuildAudioArgs assembles the yt-dlp invocation for best-audio MP3 output.
func BuildAudioArgs(url, outputTemplate string) []string {
	return []string{
		"--no-warnings",
		"--print-json",
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"-o", outputTemplate,
		url,
	}
}

// parseDownloadedPath pulls the final file path out of yt-dlp's JSON output.
func parseDownloadedPath(output []byte) string {
	var info struct {
		RequestedDownloads []struct {
			Filepath string `json:"filepath"`
		} `json:"requested_downloads"`
	}

	if err := json.Unmarshal(output, &info); err != nil {
		return ""
	}
	if len(info.RequestedDownloads) == 0 {
		return ""
	}
	return info.RequestedDownloads[0].Filepath
}
