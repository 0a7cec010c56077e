// Package history renders the month calendar grid with per-day
// completion tiers and the month's aggregate stats.
package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rakesh-arrepu/HHH-sub000/internal/calendar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	// Tier styles: empty, one section, two sections, complete. One- and
	// two-section days are distinct tiers, never one "partial" bucket.
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	oneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	twoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	futureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236"))

	todayStyle = lipgloss.NewStyle().
			Underline(true)
)

// Model is the history view.
type Model struct {
	grid       calendar.MonthGrid
	title      string
	streak     int
	hasStreak  bool
	viewedName string
}

func New() Model {
	return Model{}
}

// SetGrid replaces the rendered month.
func (m *Model) SetGrid(grid calendar.MonthGrid, viewedName string) {
	m.grid = grid
	m.title = fmt.Sprintf("%s %d", grid.Month, grid.Year)
	m.viewedName = viewedName
}

// SetStreak updates the streak shown under the grid.
func (m *Model) SetStreak(streak int) {
	m.streak = streak
	m.hasStreak = true
}

func (m Model) View() string {
	if len(m.grid.Cells) == 0 {
		return "Loading history..."
	}

	var b strings.Builder
	title := m.title
	if m.viewedName != "" {
		title += " — " + m.viewedName
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(weekdayStyle.Render("Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	col := 0
	for _, cell := range m.grid.Cells {
		if col > 0 {
			b.WriteString(" ")
		}
		b.WriteString(renderCell(cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	stats := m.grid.Stats
	b.WriteString("\n" + statsStyle.Render(fmt.Sprintf(
		"complete %d · two sections %d · one section %d · rate %d%%",
		stats.CompleteDays, stats.TwoSectionDays, stats.OneSectionDays, stats.CompletionRate)))

	if m.hasStreak {
		b.WriteString("\n" + streakStyle.Render(fmt.Sprintf("streak: %d day(s)", m.streak)))
	}

	return b.String()
}

func renderCell(cell calendar.Cell) string {
	if cell.Blank() {
		return "   "
	}
	label := fmt.Sprintf("%2d", cell.Day)

	// Future cells render inert: no tier, no today underline beyond the
	// dimmed label.
	if cell.IsFuture {
		return futureStyle.Render(label) + " "
	}

	style := emptyStyle
	glyph := " "
	switch {
	case cell.IsComplete:
		style = completeStyle
		glyph = "●"
	case cell.SectionCount == 2:
		style = twoStyle
		glyph = "◕"
	case cell.SectionCount == 1:
		style = oneStyle
		glyph = "◔"
	}
	if cell.IsToday {
		style = style.Inherit(todayStyle)
	}
	return style.Render(label + glyph)
}
