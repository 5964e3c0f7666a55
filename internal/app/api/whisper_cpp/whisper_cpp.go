package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/zpeteman/content-repurposer/internal/app/api"
	"github.com/zpeteman/content-repurposer/internal/app/audio"
	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// LocalTranscriber implements local transcription using the whisper.cpp
// binary with a ggml model sized by configuration.
type LocalTranscriber struct {
	binaryPath string
	modelsDir  string
	modelSize  string
}

// NewLocalTranscriber creates a new LocalTranscriber. binaryPath may be empty,
// in which case the binary is looked up on PATH.
func NewLocalTranscriber(binaryPath, modelsDir, modelSize string) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelsDir:  modelsDir,
		modelSize:  modelSize,
	}
}

func (lt *LocalTranscriber) modelPath() string {
	return filepath.Join(lt.modelsDir, fmt.Sprintf("ggml-%s.bin", lt.modelSize))
}

func (lt *LocalTranscriber) findBinary() string {
	if lt.binaryPath != "" {
		return lt.binaryPath
	}

	names := []string{"whisper-cli", "whisper", "whisper-cpp", "main"}
	if runtime.GOOS == "windows" {
		names = []string{"whisper-cli.exe", "whisper.exe", "whisper-cpp.exe", "main.exe"}
	}

	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// Transcribe runs whisper.cpp over the audio file, converting it to 16kHz WAV
// first when necessary, and parses the JSON output into a Transcript.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, audioPath string) (*model.Transcript, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file not found %s: %w", audioPath, fs.ErrNotExist)
	}

	binaryPath := lt.findBinary()
	if binaryPath == "" {
		return nil, &api.TranscriptionError{Path: audioPath, Err: fmt.Errorf("whisper.cpp binary not found")}
	}
	if _, err := os.Stat(lt.modelPath()); err != nil {
		return nil, &api.TranscriptionError{Path: audioPath, Err: fmt.Errorf("model %s not found: %w", lt.modelPath(), err)}
	}

	inputPath := audioPath
	is16kHzWav, err := audio.Is16kHzWavFile(inputPath)
	if err != nil {
		return nil, &api.TranscriptionError{Path: audioPath, Err: err}
	}
	if !is16kHzWav {
		inputPath, err = audio.ConvertTo16kHzWav(inputPath)
		if err != nil {
			return nil, &api.TranscriptionError{Path: audioPath, Err: err}
		}
		defer os.Remove(inputPath)
	}

	outputBase, cleanup, err := newOutputBase(inputPath)
	if err != nil {
		return nil, &api.TranscriptionError{Path: audioPath, Err: err}
	}
	defer cleanup()
	jsonPath := outputBase + ".json"

	args := []string{
		"-m", lt.modelPath(),
		"-f", inputPath,
		"-of", outputBase,
		"-oj",
	}

	command := exec.CommandContext(ctx, binaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return nil, &api.TranscriptionError{
			Path: audioPath,
			Err:  fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String()),
		}
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, &api.TranscriptionError{Path: audioPath, Err: fmt.Errorf("failed to read output file: %w", err)}
	}

	transcript, err := ParseWhisperJSON(data)
	if err != nil {
		return nil, &api.TranscriptionError{Path: audioPath, Err: err}
	}
	return transcript, nil
}

// newOutputBase returns a fresh -of target for one whisper.cpp run. Each call
// gets its own temp directory so concurrent transcriptions never share an
// output file.
func newOutputBase(audioPath string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "ccraft_whisper_")
	if err != nil {
		return "", nil, fmt.Errorf("create output dir: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	return filepath.Join(dir, base), func() { os.RemoveAll(dir) }, nil
}

// ParseWhisperJSON decodes whisper.cpp's -oj output.
func ParseWhisperJSON(data []byte) (*model.Transcript, error) {
	var output struct {
		Result struct {
			Language string `json:"language"`
		} `json:"result"`
		Transcription []struct {
			Timestamps struct {
				From string `json:"from"`
				To   string `json:"to"`
			} `json:"timestamps"`
			Text string `json:"text"`
		} `json:"transcription"`
	}

	if err := json.Unmarshal(data, &output); err != nil {
		return nil, err
	}

	var segments []model.Segment
	var fullText strings.Builder
	var duration float64

	for _, item := range output.Transcription {
		start := parseTimestamp(item.Timestamps.From)
		end := parseTimestamp(item.Timestamps.To)
		text := strings.TrimSpace(item.Text)

		segments = append(segments, model.Segment{
			Start: start,
			End:   end,
			Text:  text,
		})
		if end > duration {
			duration = end
		}

		if fullText.Len() > 0 {
			fullText.WriteString(" ")
		}
		fullText.WriteString(text)
	}

	return &model.Transcript{
		Text:     fullText.String(),
		Language: output.Result.Language,
		Duration: duration,
		Segments: segments,
	}, nil
}

var timestampRegex = regexp.MustCompile(`(\d+):(\d+):(\d+)[,.](\d+)`)

func parseTimestamp(ts string) float64 {
	matches := timestampRegex.FindStringSubmatch(ts)
	if len(matches) != 5 {
		return 0
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])
	millis, _ := strconv.Atoi(matches[4])

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}

var _ api.Transcriber = (*LocalTranscriber)(nil)
