package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zpeteman/content-repurposer/internal/app/audio"
	"github.com/zpeteman/content-repurposer/internal/app/util/files"
)

// acquireLocal brings a local upload into the working directory. Supported
// audio containers are copied as-is; video containers are transcoded to MP3.
func (s *Service) acquireLocal(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &ConversionError{Path: path, Err: err}
	}

	base := filepath.Base(path)

	switch {
	case audio.IsAudioFile(path):
		dst := filepath.Join(s.workDir, files.SanitizeFileName(base))
		if err := files.CopyFile(path, dst); err != nil {
			return "", &ConversionError{Path: path, Err: err}
		}
		return dst, nil

	case audio.IsVideoFile(path):
		name := strings.TrimSuffix(base, filepath.Ext(base))
		mp3Path := TargetMP3Path(s.workDir, name)
		if err := audio.ConvertToMP3(path, mp3Path); err != nil {
			return "", &ConversionError{Path: path, Err: err}
		}
		return mp3Path, nil

	default:
		return "", &ConversionError{
			Path: path,
			Err:  fmt.Errorf("unsupported file extension %q", filepath.Ext(path)),
		}
	}
}
