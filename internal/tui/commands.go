package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/journal"
)

func (m Model) loadMe() tea.Cmd {
	return func() tea.Msg {
		user, err := m.api.Me(context.Background())
		return meLoadedMsg{user: user, err: err}
	}
}

func (m Model) loadGroups() tea.Cmd {
	return func() tea.Msg {
		groups, err := m.api.Groups(context.Background())
		return groupsLoadedMsg{groups: groups, err: err}
	}
}

func (m Model) loadMembers(groupID int) tea.Cmd {
	return func() tea.Msg {
		members, err := m.api.Members(context.Background(), groupID)
		return membersLoadedMsg{groupID: groupID, members: members, err: err}
	}
}

func (m Model) loadEntries(cursor journal.Cursor) tea.Cmd {
	userParam := m.view.UserID
	return func() tea.Msg {
		entries, err := m.api.Entries(context.Background(), cursor.GroupID, cursor.Date, userParam)
		return entriesLoadedMsg{cursor: cursor, entries: entries, err: err}
	}
}

func (m Model) loadHistory(cursor journal.Cursor) tea.Cmd {
	userParam := m.view.UserID
	days := m.historyWindow()
	return func() tea.Msg {
		records, err := m.api.History(context.Background(), cursor.GroupID, days, userParam)
		return historyLoadedMsg{cursor: cursor, records: records, err: err}
	}
}

func (m Model) loadStreak(cursor journal.Cursor) tea.Cmd {
	userParam := m.view.UserID
	return func() tea.Msg {
		streak, err := m.api.Streak(context.Background(), cursor.GroupID, userParam)
		return streakLoadedMsg{cursor: cursor, streak: streak, err: err}
	}
}

// historyWindow returns how many days back to request so the window
// covers the displayed month.
func (m Model) historyWindow() int {
	first := time.Date(m.monthCursor.Year(), m.monthCursor.Month(), 1, 0, 0, 0, 0, time.Local)
	days := int(time.Since(first).Hours()/24) + 1
	if days < constants.DefaultHistoryDays {
		days = constants.DefaultHistoryDays
	}
	return days
}

func (m Model) saveEntry(cursor journal.Cursor, section, content string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.api.SaveEntry(context.Background(), cursor.GroupID, section, content, cursor.Date)
		return entrySavedMsg{cursor: cursor, section: section, content: content, err: err}
	}
}

func (m Model) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, token, err := m.api.Login(context.Background(), email, password)
		return loginDoneMsg{user: user, token: token, err: err}
	}
}

func (m Model) clearToastAfter(id int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}
