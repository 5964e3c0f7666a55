package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyNamed(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func advance(t *testing.T, m tea.Model, msgs ...tea.Msg) WizardModel {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	wm, ok := m.(WizardModel)
	require.True(t, ok)
	return wm
}

func TestWizardSourceRequired(t *testing.T) {
	m := advance(t, NewWizardModel(), keyNamed("enter"))
	assert.Equal(t, stepSource, m.step)
	assert.Contains(t, m.View(), "enter a URL")
}

func TestWizardTypingAndBackspace(t *testing.T) {
	m := advance(t, NewWizardModel(),
		keyRunes("https://youtu.be/abcd"),
		keyNamed("backspace"),
	)
	assert.Equal(t, "https://youtu.be/abc", m.source)
}

func TestWizardFullFlow(t *testing.T) {
	m := advance(t, NewWizardModel(),
		keyRunes("https://youtu.be/abc"),
		keyNamed("enter"), // to language
		keyNamed("down"),  // spanish
		keyNamed("enter"), // to counts
		keyNamed("right"), // instagram 1 -> 2
		keyNamed("down"),  // to x
		keyNamed("left"),  // x 1 -> 0
		keyNamed("enter"), // to confirm
		keyNamed("enter"), // confirm
	)

	opts := m.Options()
	assert.True(t, opts.Confirmed)
	assert.Equal(t, "https://youtu.be/abc", opts.Source)
	assert.Equal(t, "spanish", opts.Language)
	assert.Equal(t, 2, opts.PostCounts[model.PlatformInstagram])
	assert.Equal(t, 0, opts.PostCounts[model.PlatformX])
}

func TestWizardCountBounds(t *testing.T) {
	m := advance(t, NewWizardModel(),
		keyRunes("file.mp3"),
		keyNamed("enter"),
		keyNamed("enter"),
	)
	require.Equal(t, stepCounts, m.step)

	for i := 0; i < 10; i++ {
		m = advance(t, m, keyNamed("right"))
	}
	assert.Equal(t, 5, m.counts[model.PlatformInstagram])

	for i := 0; i < 10; i++ {
		m = advance(t, m, keyNamed("left"))
	}
	assert.Equal(t, 0, m.counts[model.PlatformInstagram])
}

func TestWizardRequiresOnePost(t *testing.T) {
	m := advance(t, NewWizardModel(),
		keyRunes("file.mp3"),
		keyNamed("enter"),
		keyNamed("enter"),
	)

	// Zero out every platform, then try to continue.
	for range model.SupportedPlatforms {
		m = advance(t, m, keyNamed("left"), keyNamed("down"))
	}
	m = advance(t, m, keyNamed("enter"))
	assert.Equal(t, stepCounts, m.step)
	assert.Contains(t, m.View(), "at least one post")
}

func TestWizardEscGoesBack(t *testing.T) {
	m := advance(t, NewWizardModel(),
		keyRunes("file.mp3"),
		keyNamed("enter"),
		keyNamed("esc"),
	)
	assert.Equal(t, stepSource, m.step)
}

func TestWizardCancel(t *testing.T) {
	m := advance(t, NewWizardModel(),
		keyRunes("file.mp3"),
		keyNamed("enter"),
		keyNamed("enter"),
		keyNamed("enter"),
		keyNamed("n"),
	)
	assert.False(t, m.Options().Confirmed)
}

func TestFormatResultsOrderAndOmission(t *testing.T) {
	content := model.GeneratedContent{
		model.PlatformX:         {"tweet one"},
		model.PlatformInstagram: {"caption one", "caption two"},
	}

	out := FormatResults(content)
	assert.Contains(t, out, "INSTAGRAM")
	assert.Contains(t, out, "X")
	assert.NotContains(t, out, "LINKEDIN")
	assert.Less(t, indexOf(out, "INSTAGRAM"), indexOf(out, "tweet one"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestFormatTranscriptSummary(t *testing.T) {
	out := FormatTranscriptSummary(&model.Transcript{
		Text:     "one two three",
		Language: "en",
		Duration: 42,
	})
	assert.Contains(t, out, "3 words")
	assert.Contains(t, out, "language en")
	assert.Contains(t, out, "42s")

	assert.Empty(t, FormatTranscriptSummary(nil))
}
