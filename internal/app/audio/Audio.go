package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// AudioExtensions are the containers accepted without transcoding.
var AudioExtensions = []string{".mp3", ".wav", ".ogg", ".flac", ".m4a"}

// VideoExtensions are the containers transcoded to MP3 before transcription.
var VideoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".webm"}

// IsAudioFile reports whether path has a supported audio extension.
func IsAudioFile(path string) bool {
	return hasExtension(path, AudioExtensions)
}

// IsVideoFile reports whether path has a supported video extension.
func IsVideoFile(path string) bool {
	return hasExtension(path, VideoExtensions)
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// GetAudioDuration returns the duration of a media file in whole seconds.
func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	duration := int(math.Round(durationFloat))
	return duration, nil
}

// ConvertToMP3 extracts the audio track of inputPath into mp3Path via ffmpeg.
func ConvertToMP3(inputPath string, mp3Path string) error {
	if _, err := os.Stat(mp3Path); !os.IsNotExist(err) {
		return nil
	}

	cmd := exec.Command("ffmpeg", "-i", inputPath, "-vn", "-acodec", "libmp3lame", "-q:a", "2", mp3Path)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return nil
}

// Probe runs ffprobe on filePath and returns the parsed stream/format info.
func Probe(filePath string) (*model.FFProbeOutput, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_format", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return ParseProbeOutput(output)
}

// ParseProbeOutput decodes ffprobe's JSON output.
func ParseProbeOutput(data []byte) (*model.FFProbeOutput, error) {
	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(data, &probeOutput); err != nil {
		return nil, err
	}
	return &probeOutput, nil
}

// Is16kHzWavFile reports whether filePath already holds 16kHz PCM audio, the
// input format whisper.cpp expects.
func Is16kHzWavFile(filePath string) (bool, error) {
	probeOutput, err := Probe(filePath)
	if err != nil {
		return false, err
	}
	return HasPCM16kStream(probeOutput), nil
}

// HasPCM16kStream reports whether any stream is 16kHz pcm_s16le audio.
func HasPCM16kStream(probeOutput *model.FFProbeOutput) bool {
	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true
		}
	}
	return false
}

// ConvertTo16kHzWav converts inputFilePath into a 16kHz WAV next to it and
// returns the new path.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"
	if _, err := os.Stat(outputFilePath); !os.IsNotExist(err) {
		return outputFilePath, nil
	}

	cmd := exec.Command("ffmpeg", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputFilePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return outputFilePath, nil
}
