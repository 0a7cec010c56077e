// Package day renders the journal view: the three section panes for the
// selected date, with an inline editor for the active section.
package day

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	sectionNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	selectedSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	emptyContentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	completeBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	readOnlyBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Italic(true)
)

// Model is the journal day view.
type Model struct {
	date       string
	contents   map[string]string
	filled     bool
	readOnly   bool
	viewedName string
	selected   int
	editing    bool
	input      textarea.Model
	width      int
}

func New() Model {
	input := textarea.New()
	input.Placeholder = "What happened today?"
	input.SetHeight(4)
	input.CharLimit = 2000
	return Model{
		contents: make(map[string]string),
		input:    input,
	}
}

// SetDay replaces the whole view: date, contents, and perspective.
func (m *Model) SetDay(date string, contents map[string]string, readOnly bool, viewedName string) {
	m.date = date
	m.contents = contents
	m.readOnly = readOnly
	m.viewedName = viewedName
	m.editing = false
}

// SetContent patches a single section after a successful save.
func (m *Model) SetContent(section, content string) {
	m.contents[section] = content
}

// SetFilled marks the date header while entries for the day are still
// loading, based on the filled-date index.
func (m *Model) SetFilled(filled bool) {
	m.filled = filled
}

// SetSize updates the render width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.input.SetWidth(width - 4)
}

// MoveUp and MoveDown change the selected section.
func (m *Model) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

func (m *Model) MoveDown() {
	if m.selected < len(constants.Sections)-1 {
		m.selected++
	}
}

// Selected returns the key of the selected section.
func (m *Model) Selected() string {
	return constants.Sections[m.selected]
}

// ReadOnly reports whether editing is disabled for this view.
func (m *Model) ReadOnly() bool {
	return m.readOnly
}

// Editing reports whether the inline editor is open.
func (m *Model) Editing() bool {
	return m.editing
}

// StartEdit opens the inline editor for the selected section. No-op on a
// read-only view.
func (m *Model) StartEdit() {
	if m.readOnly {
		return
	}
	m.input.SetValue(m.contents[m.Selected()])
	m.input.Focus()
	m.editing = true
}

// CancelEdit closes the editor without saving.
func (m *Model) CancelEdit() {
	m.editing = false
	m.input.Blur()
}

// CommitEdit closes the editor and returns the section and drafted
// content for the caller to save.
func (m *Model) CommitEdit() (section, content string) {
	section = m.Selected()
	content = m.input.Value()
	m.editing = false
	m.input.Blur()
	return section, content
}

// Update forwards input events to the editor while it is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// CompletedCount returns how many sections have non-blank content.
func (m Model) CompletedCount() int {
	count := 0
	for _, section := range constants.Sections {
		if strings.TrimSpace(m.contents[section]) != "" {
			count++
		}
	}
	return count
}

func (m Model) View() string {
	var b strings.Builder

	title := m.date
	if m.filled {
		title = "● " + title
	}
	if m.viewedName != "" {
		title += " — " + m.viewedName
	}
	b.WriteString(titleStyle.Render(title))
	if m.readOnly {
		b.WriteString("  " + readOnlyBannerStyle.Render("read-only"))
	}
	b.WriteString("\n\n")

	for i, section := range constants.Sections {
		name := sectionNameStyle
		marker := "  "
		if i == m.selected {
			name = selectedSectionStyle
			marker = "> "
		}
		b.WriteString(marker + name.Render(section) + "\n")

		if m.editing && i == m.selected {
			b.WriteString(m.input.View() + "\n")
			continue
		}

		content := strings.TrimSpace(m.contents[section])
		if content == "" {
			b.WriteString("  " + emptyContentStyle.Render("(empty)") + "\n")
		} else {
			b.WriteString("  " + content + "\n")
		}
		b.WriteString("\n")
	}

	count := m.CompletedCount()
	status := fmt.Sprintf("%d/%d sections", count, constants.SectionCount)
	if count == constants.SectionCount {
		status = completeBadgeStyle.Render(status + " — complete!")
	}
	b.WriteString(status)

	return b.String()
}
