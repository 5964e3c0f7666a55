package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

func TestToExcel(t *testing.T) {
	records := []model.RunRecord{
		{
			ID:            1,
			Source:        "https://youtu.be/abc",
			SourceKind:    "url",
			AudioFileName: "artifact.mp3",
			AudioDuration: 95,
			Language:      "english",
			Platforms:     "instagram,x",
			PostCount:     3,
			CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:           2,
			Source:       "/tmp/talk.mp4",
			SourceKind:   "file",
			Language:     "spanish",
			Platforms:    "linkedin",
			PostCount:    1,
			HasError:     1,
			ErrorMessage: "transcription failed",
			CreatedAt:    time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	outputPath := filepath.Join(t.TempDir(), "runs.xlsx")
	require.NoError(t, ToExcel(records, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Source", sheet.Rows[0].Cells[1].String())
	assert.Equal(t, "https://youtu.be/abc", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "instagram,x", sheet.Rows[1].Cells[6].String())
	assert.Equal(t, "transcription failed", sheet.Rows[2].Cells[8].String())
}

func TestToExcelEmpty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, outputPath))
	assert.FileExists(t, outputPath)
}
