// Package tui implements the interactive terminal client. All remote
// calls run as bubbletea commands; their result messages carry the
// cursor they were issued for, and Update discards results for a cursor
// the user has already navigated away from.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rakesh-arrepu/HHH-sub000/internal/api"
	"github.com/rakesh-arrepu/HHH-sub000/internal/calendar"
	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/journal"
	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
	"github.com/rakesh-arrepu/HHH-sub000/internal/session"
	"github.com/rakesh-arrepu/HHH-sub000/internal/tui/components/day"
	"github.com/rakesh-arrepu/HHH-sub000/internal/tui/components/groups"
	"github.com/rakesh-arrepu/HHH-sub000/internal/tui/components/history"
)

type Model struct {
	api     *api.Client
	session *session.Manager

	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	loading  bool
	quitting bool
	width    int
	height   int

	me      models.User
	groups  []models.Group
	group   models.Group
	members []models.Member
	view    journal.Perspective

	dayCursor   *journal.DayCursor
	monthCursor *calendar.MonthCursor
	store       *journal.EntryStore
	completion  journal.CompletionDetector
	milestone   journal.MilestoneDetector
	streak      models.Streak
	records     []models.DayRecord

	dayView     day.Model
	historyView history.Model
	groupsView  groups.Model

	loginForm     *huh.Form
	loginEmail    string
	loginPassword string

	toast   string
	toastID int
	errMsg  string
}

func NewModel(apiClient *api.Client, sess *session.Manager) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		api:         apiClient,
		session:     sess,
		state:       constants.StateJournal,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		dayCursor:   journal.NewDayCursor(nil),
		monthCursor: calendar.NewMonthCursor(nil),
		store:       journal.NewEntryStore(),
		dayView:     day.New(),
		historyView: history.New(),
		groupsView:  groups.New(),
	}
	if sess.Token() == "" {
		m.enterLogin("")
	}
	return m
}

func (m *Model) enterLogin(notice string) {
	m.state = constants.StateLogin
	m.errMsg = notice
	m.loginEmail = ""
	m.loginPassword = ""
	m.loginForm = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Email").Value(&m.loginEmail),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.loginPassword),
	))
}

// cursor returns the journal cursor for the current group, date, and
// viewed user.
func (m Model) cursor() journal.Cursor {
	viewedID := m.view.UserID
	if viewedID == 0 {
		viewedID = m.me.ID
	}
	return journal.Cursor{GroupID: m.group.ID, Date: m.dayCursor.Date(), UserID: viewedID}
}

// viewedName returns the display name of the member being viewed, or
// empty for self.
func (m Model) viewedName() string {
	if m.view.UserID == 0 {
		return ""
	}
	for _, member := range m.members {
		if member.UserID == m.view.UserID {
			return member.Name
		}
	}
	return ""
}

func (m Model) Init() tea.Cmd {
	if m.state == constants.StateLogin {
		return tea.Batch(m.loginForm.Init(), m.spinner.Tick)
	}
	return tea.Batch(m.loadMe(), m.spinner.Tick)
}
