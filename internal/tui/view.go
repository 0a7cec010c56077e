package tui

import (
	"strings"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
)

var tabNames = []struct {
	state constants.SessionState
	label string
}{
	{constants.StateJournal, "Journal"},
	{constants.StateHistory, "History"},
	{constants.StateGroups, "Groups"},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateLogin {
		var b strings.Builder
		b.WriteString(headerStyle.Render(constants.AppName) + "\n\n")
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render(m.errMsg) + "\n\n")
		}
		if m.loading {
			b.WriteString(m.spinner.View() + " logging in...\n")
		} else if m.loginForm != nil {
			b.WriteString(m.loginForm.View())
		}
		return docStyle.Render(b.String())
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case constants.StateJournal:
		if m.loading {
			b.WriteString(m.spinner.View() + " loading...\n")
		} else {
			b.WriteString(m.dayView.View())
		}
	case constants.StateHistory:
		b.WriteString(m.historyView.View())
	case constants.StateGroups:
		b.WriteString(m.groupsView.View())
	}

	b.WriteString("\n\n")
	if m.toast != "" {
		b.WriteString(toastStyle.Render(m.toast) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for _, tab := range tabNames {
		label := tab.label
		if tab.state == constants.StateJournal && m.group.Name != "" {
			label += ": " + m.group.Name
		}
		if tab.state == m.state {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	line := strings.Join(tabs, " ")
	if name := m.viewedName(); name != "" {
		line += "  " + readOnlyStyle.Render("viewing "+name+" (read-only)")
	}
	return line
}
