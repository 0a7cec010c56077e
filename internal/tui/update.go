package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rakesh-arrepu/HHH-sub000/internal/api"
	"github.com/rakesh-arrepu/HHH-sub000/internal/calendar"
	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/journal"
	"github.com/rakesh-arrepu/HHH-sub000/internal/logger"
	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
	"github.com/rakesh-arrepu/HHH-sub000/internal/tui/components/groups"
	"github.com/rakesh-arrepu/HHH-sub000/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dayView.SetSize(msg.Width-4, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearToastMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case meLoadedMsg:
		if msg.err != nil {
			return m.handleLoadError(msg.err, "could not load profile")
		}
		m.me = msg.user
		return m, m.loadGroups()

	case groupsLoadedMsg:
		if msg.err != nil {
			return m.handleLoadError(msg.err, "could not load groups")
		}
		m.groups = msg.groups
		m.groupsView.SetGroups(msg.groups, m.group.ID)
		if m.group.ID == 0 && len(msg.groups) > 0 {
			cmd := m.switchGroup(msg.groups[0])
			return m, cmd
		}
		if len(msg.groups) == 0 {
			m.loading = false
			m.state = constants.StateGroups
		}
		return m, nil

	case membersLoadedMsg:
		if msg.err != nil {
			return m.handleLoadError(msg.err, "could not load members")
		}
		if msg.groupID == m.group.ID {
			m.members = msg.members
		}
		return m, nil

	case entriesLoadedMsg:
		if msg.err != nil {
			// Previously displayed entries stay in place.
			return m.handleLoadError(msg.err, "could not load entries")
		}
		if m.store.Replace(msg.cursor, msg.entries) {
			m.loading = false
			m.syncDayView()
			return m.observeCompletion()
		}
		logger.Debug("dropped stale entries response", "cursor_date", msg.cursor.Date)
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			return m.handleLoadError(msg.err, "could not load history")
		}
		if m.store.ReplaceFilled(msg.cursor, msg.records) {
			m.records = msg.records
			m.rebuildGrid()
			m.dayView.SetFilled(m.store.Filled(m.store.Cursor().Date))
		}
		return m, nil

	case streakLoadedMsg:
		if msg.err != nil {
			return m.handleLoadError(msg.err, "could not load streak")
		}
		if msg.cursor.SameView(m.store.Cursor()) {
			m.streak = msg.streak
			m.historyView.SetStreak(msg.streak.Streak)
			if m.milestone.Observe(msg.streak.Streak) {
				return m.showToast(fmt.Sprintf("🔥 Streak milestone: %d days!", msg.streak.Streak))
			}
		}
		return m, nil

	case entrySavedMsg:
		if msg.err != nil {
			var valErr *api.ValidationError
			if errors.As(msg.err, &valErr) {
				return m.showToast("Save rejected: " + valErr.Error())
			}
			return m.handleLoadError(msg.err, "save failed")
		}
		if m.store.ApplySave(msg.cursor, msg.section, msg.content) {
			m.dayView.SetContent(msg.section, msg.content)
			// The streak may have moved; refresh it.
			model, cmd := m.observeCompletion()
			return model, tea.Batch(cmd, model.loadStreak(msg.cursor))
		}
		return m, nil

	case loginDoneMsg:
		if msg.err != nil {
			m.loading = false
			m.enterLogin("Login failed: " + msg.err.Error())
			return m, m.loginForm.Init()
		}
		if err := m.session.SetToken(msg.token); err != nil {
			logger.Warn("session token not persisted", "error", err)
		}
		m.me = msg.user
		m.errMsg = ""
		m.state = constants.StateJournal
		return m, m.loadGroups()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == constants.StateLogin && m.loginForm != nil {
		return m.updateLoginForm(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The login form and the inline editor take precedence over global
	// bindings, except for ctrl+c.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.state == constants.StateLogin {
		return m.updateLoginForm(msg)
	}
	if m.state == constants.StateJournal && m.dayView.Editing() {
		return m.handleEditorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextView):
		switch m.state {
		case constants.StateJournal:
			m.state = constants.StateHistory
		case constants.StateHistory:
			m.state = constants.StateGroups
		case constants.StateGroups:
			m.state = constants.StateJournal
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case constants.StateJournal:
		return m.handleJournalKey(msg)
	case constants.StateHistory:
		return m.handleHistoryKey(msg)
	case constants.StateGroups:
		return m.handleGroupsKey(msg)
	}
	return m, nil
}

func (m Model) handleJournalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.dayCursor.PrevDay()
		cmd := m.refreshDay()
		return m, cmd
	case key.Matches(msg, m.keys.NextDay):
		before := m.dayCursor.Date()
		m.dayCursor.NextDay()
		if m.dayCursor.Date() == before {
			// Already on today; the cursor refused to move forward.
			return m, nil
		}
		cmd := m.refreshDay()
		return m, cmd
	case key.Matches(msg, m.keys.Today):
		if m.dayCursor.IsToday() {
			return m, nil
		}
		m.dayCursor.Today()
		cmd := m.refreshDay()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.dayView.MoveUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.dayView.MoveDown()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if m.store.ReadOnly() {
			return m.showToast("Viewing " + m.viewedName() + " — read-only")
		}
		m.dayView.StartEdit()
		return m, nil
	}
	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dayView.CancelEdit()
		return m, nil
	case "ctrl+s":
		section, content := m.dayView.CommitEdit()
		trimmed, err := m.store.ValidateSave(section, content)
		if err != nil {
			if errors.Is(err, journal.ErrEmptyContent) {
				return m.showToast("Nothing to save")
			}
			return m.showToast(err.Error())
		}
		return m, m.saveEntry(m.store.Cursor(), section, trimmed)
	}
	var cmd tea.Cmd
	m.dayView, cmd = m.dayView.Update(msg)
	return m, cmd
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		m.monthCursor.PrevMonth()
		m.rebuildGrid()
		return m, m.loadHistory(m.store.Cursor())
	case key.Matches(msg, m.keys.NextMonth):
		if m.monthCursor.AtCurrentMonth() {
			return m, nil
		}
		m.monthCursor.NextMonth()
		m.rebuildGrid()
		return m, m.loadHistory(m.store.Cursor())
	}
	return m, nil
}

func (m Model) handleGroupsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.groupsView.MoveUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.groupsView.MoveDown()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.groupsView.BackToGroups()
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if member, ok := m.groupsView.SelectedMember(); ok {
			m.view = journal.ResolvePerspective(m.group.IsOwner, m.members, member.UserID, m.me.ID)
			m.state = constants.StateJournal
			cmd := m.refreshDay()
			return m, cmd
		}
		if group, ok := m.groupsView.SelectedGroup(); ok {
			m.state = constants.StateJournal
			cmd := m.switchGroup(group)
			return m, cmd
		}
	case "m":
		group, ok := m.groupsView.SelectedGroup()
		if !ok || !group.IsOwner {
			return m, nil
		}
		if group.ID != m.group.ID {
			cmd := m.switchGroup(group)
			return m, cmd
		}
		m.groupsView.SetMembers(m.members, m.me.ID, m.view.UserID)
	case "s":
		if m.groupsView.Mode() == groups.ModeMembers {
			m.view = journal.Perspective{}
			m.state = constants.StateJournal
			cmd := m.refreshDay()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.loginForm == nil {
		return m, nil
	}
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}
	if m.loginForm.State == huh.StateCompleted {
		email := strings.TrimSpace(m.loginEmail)
		if email == "" {
			m.enterLogin("Email is required")
			return m, m.loginForm.Init()
		}
		m.loading = true
		return m, tea.Batch(cmd, m.doLogin(email, m.loginPassword))
	}
	return m, cmd
}

// switchGroup makes the group active, resets the perspective to self, and
// reloads everything. Perspective never carries over across groups.
func (m *Model) switchGroup(group models.Group) tea.Cmd {
	m.group = group
	m.view = journal.Perspective{}
	m.members = nil
	m.groupsView.SetGroups(m.groups, group.ID)
	cmds := []tea.Cmd{m.refreshDay()}
	if group.IsOwner {
		cmds = append(cmds, m.loadMembers(group.ID))
	}
	return tea.Batch(cmds...)
}

// refreshDay repoints the store at the current cursor and kicks off the
// three independent reloads. They complete in any order; each writes to
// its own slice of state.
func (m *Model) refreshDay() tea.Cmd {
	cursor := m.cursor()
	m.store.SetCursor(cursor, m.view.ReadOnly)
	m.syncDayView()
	m.loading = true
	return tea.Batch(m.loadEntries(cursor), m.loadHistory(cursor), m.loadStreak(cursor))
}

func (m *Model) syncDayView() {
	contents := make(map[string]string, constants.SectionCount)
	for _, section := range constants.Sections {
		if content, ok := m.store.Content(section); ok {
			contents[section] = content
		}
	}
	m.dayView.SetDay(m.store.Cursor().Date, contents, m.store.ReadOnly(), m.viewedName())
	m.dayView.SetFilled(m.store.Filled(m.store.Cursor().Date))
}

func (m *Model) rebuildGrid() {
	grid := calendar.BuildMonth(m.monthCursor.Year(), m.monthCursor.Month(), m.records, utils.Today())
	m.historyView.SetGrid(grid, m.viewedName())
	m.historyView.SetStreak(m.streak.Streak)
}

func (m Model) observeCompletion() (Model, tea.Cmd) {
	if m.completion.Observe(m.store.CompletedCount()) {
		return m.showToast("🎉 All three sections complete!")
	}
	return m, nil
}

func (m Model) showToast(text string) (Model, tea.Cmd) {
	m.toast = text
	m.toastID++
	return m, m.clearToastAfter(m.toastID)
}

func (m Model) handleLoadError(err error, prefix string) (Model, tea.Cmd) {
	m.loading = false
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		m.enterLogin("Session expired. Log in again.")
		return m, m.loginForm.Init()
	}
	logger.Warn(prefix, "error", err)
	return m.showToast(prefix + ": " + err.Error())
}
