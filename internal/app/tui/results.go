package tui

import (
	"fmt"
	"strings"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// FormatResults renders generated posts grouped by platform, ready for
// copying out of the terminal.
func FormatResults(content model.GeneratedContent) string {
	var sb strings.Builder

	for _, platform := range model.SupportedPlatforms {
		posts, ok := content[platform]
		if !ok {
			continue
		}

		sb.WriteString(platformStyle.Render(strings.ToUpper(string(platform))))
		sb.WriteString("\n")

		for i, post := range posts {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("post %d/%d", i+1, len(posts))))
			sb.WriteString("\n")
			sb.WriteString(postStyle.Render(post))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTranscriptSummary renders a one-line transcript summary.
func FormatTranscriptSummary(t *model.Transcript) string {
	if t == nil {
		return ""
	}

	words := len(strings.Fields(t.Text))
	parts := []string{fmt.Sprintf("%d words", words)}
	if t.Language != "" {
		parts = append(parts, "language "+t.Language)
	}
	if t.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.0fs of audio", t.Duration))
	}

	return dimStyle.Render("Transcribed " + strings.Join(parts, ", "))
}
