package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zpeteman/content-repurposer/internal/app/generator"
	"github.com/zpeteman/content-repurposer/internal/app/model"
)

// Options is what the wizard collects from the user.
type Options struct {
	Source     string
	Language   string
	PostCounts model.PostCounts
	Confirmed  bool
}

type step int

const (
	stepSource step = iota
	stepLanguage
	stepCounts
	stepConfirm
)

// WizardModel is the bubbletea model for the run setup form.
type WizardModel struct {
	step step

	source    string
	sourceErr string

	languages      []string
	languageCursor int

	platforms      []model.Platform
	counts         map[model.Platform]int
	platformCursor int

	confirmed bool
	quitting  bool
}

// NewWizardModel creates the form with one post per platform preselected.
func NewWizardModel() WizardModel {
	counts := make(map[model.Platform]int, len(model.SupportedPlatforms))
	for _, p := range model.SupportedPlatforms {
		counts[p] = 1
	}

	return WizardModel{
		languages: generator.SupportedLanguages(),
		platforms: model.SupportedPlatforms,
		counts:    counts,
	}
}

func (m WizardModel) Init() tea.Cmd {
	return nil
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.step == stepSource {
			m.quitting = true
			return m, tea.Quit
		}
		m.step--
		return m, nil
	}

	switch m.step {
	case stepSource:
		return m.updateSource(keyMsg)
	case stepLanguage:
		return m.updateLanguage(keyMsg)
	case stepCounts:
		return m.updateCounts(keyMsg)
	case stepConfirm:
		return m.updateConfirm(keyMsg)
	}
	return m, nil
}

func (m WizardModel) updateSource(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if strings.TrimSpace(m.source) == "" {
			m.sourceErr = "enter a URL or a local file path"
			return m, nil
		}
		m.sourceErr = ""
		m.step = stepLanguage
	case "backspace":
		if len(m.source) > 0 {
			runes := []rune(m.source)
			m.source = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.source += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.source += " "
		}
	}
	return m, nil
}

func (m WizardModel) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.languageCursor > 0 {
			m.languageCursor--
		}
	case "down", "j":
		if m.languageCursor < len(m.languages)-1 {
			m.languageCursor++
		}
	case "enter":
		m.step = stepCounts
	}
	return m, nil
}

func (m WizardModel) updateCounts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	platform := m.platforms[m.platformCursor]

	switch msg.String() {
	case "up", "k":
		if m.platformCursor > 0 {
			m.platformCursor--
		}
	case "down", "j":
		if m.platformCursor < len(m.platforms)-1 {
			m.platformCursor++
		}
	case "right", "l", "+":
		if m.counts[platform] < generator.MaxPostsPerPlatform {
			m.counts[platform]++
		}
	case "left", "h", "-":
		if m.counts[platform] > 0 {
			m.counts[platform]--
		}
	case "enter":
		if m.totalPosts() > 0 {
			m.step = stepConfirm
		}
	}
	return m, nil
}

func (m WizardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.confirmed = true
		return m, tea.Quit
	case "n", "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m WizardModel) totalPosts() int {
	total := 0
	for _, count := range m.counts {
		total += count
	}
	return total
}

func (m WizardModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.step {
	case stepSource:
		return m.viewSource()
	case stepLanguage:
		return m.viewLanguage()
	case stepCounts:
		return m.viewCounts()
	case stepConfirm:
		return m.viewConfirm()
	}
	return ""
}

func (m WizardModel) viewSource() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("? Video or audio source"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  %s█\n", m.source))
	if m.sourceErr != "" {
		sb.WriteString(errorStyle.Render("  " + m.sourceErr))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("\n(paste a URL or type a file path, enter to continue, esc to quit)\n"))
	return sb.String()
}

func (m WizardModel) viewLanguage() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("? Output language"))
	sb.WriteString("\n\n")

	for i, lang := range m.languages {
		cursor := "  "
		style := normalStyle
		if i == m.languageCursor {
			cursor = "> "
			style = selectedStyle
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(lang)))
	}

	sb.WriteString(dimStyle.Render("\n(up/down to navigate, enter to select, esc to go back)\n"))
	return sb.String()
}

func (m WizardModel) viewCounts() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("? Posts per platform"))
	sb.WriteString("\n\n")

	for i, platform := range m.platforms {
		cursor := "  "
		style := normalStyle
		if i == m.platformCursor {
			cursor = "> "
			style = selectedStyle
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", cursor,
			style.Render(fmt.Sprintf("%-10s < %d >", platform, m.counts[platform]))))
	}

	hint := "\n(left/right to adjust 0-5, enter to continue, esc to go back)\n"
	if m.totalPosts() == 0 {
		hint = "\n(request at least one post)\n"
	}
	sb.WriteString(dimStyle.Render(hint))
	return sb.String()
}

func (m WizardModel) viewConfirm() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("? Ready to run"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  source:   %s\n", m.source))
	sb.WriteString(fmt.Sprintf("  language: %s\n", m.languages[m.languageCursor]))
	for _, platform := range m.platforms {
		if m.counts[platform] > 0 {
			sb.WriteString(fmt.Sprintf("  %-9s %d post(s)\n", string(platform)+":", m.counts[platform]))
		}
	}
	sb.WriteString(dimStyle.Render("\n(enter to start, n to cancel, esc to go back)\n"))
	return sb.String()
}

// Options returns what the user entered.
func (m WizardModel) Options() Options {
	counts := make(model.PostCounts, len(m.counts))
	for platform, count := range m.counts {
		counts[platform] = count
	}

	return Options{
		Source:     strings.TrimSpace(m.source),
		Language:   m.languages[m.languageCursor],
		PostCounts: counts,
		Confirmed:  m.confirmed,
	}
}

// RunWizard displays the form and returns the collected options. Confirmed
// is false when the user cancelled.
func RunWizard() (Options, error) {
	p := tea.NewProgram(NewWizardModel())

	finalModel, err := p.Run()
	if err != nil {
		return Options{}, err
	}

	return finalModel.(WizardModel).Options(), nil
}
