package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// ToExcel writes run history records to an xlsx file at outputFilePath.
func ToExcel(records []model.RunRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Runs")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Source"
	headerRow.AddCell().Value = "Source Kind"
	headerRow.AddCell().Value = "Audio File Name"
	headerRow.AddCell().Value = "Audio Duration (s)"
	headerRow.AddCell().Value = "Language"
	headerRow.AddCell().Value = "Platforms"
	headerRow.AddCell().Value = "Post Count"
	headerRow.AddCell().Value = "Error"
	headerRow.AddCell().Value = "Created At"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.Source
		row.AddCell().Value = r.SourceKind
		row.AddCell().Value = r.AudioFileName
		row.AddCell().Value = fmt.Sprint(r.AudioDuration)
		row.AddCell().Value = r.Language
		row.AddCell().Value = r.Platforms
		row.AddCell().Value = fmt.Sprint(r.PostCount)
		row.AddCell().Value = r.ErrorMessage
		row.AddCell().Value = r.CreatedAt.Format(time.RFC3339)
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
