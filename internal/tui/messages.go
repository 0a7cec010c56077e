package tui

import (
	"github.com/rakesh-arrepu/HHH-sub000/internal/journal"
	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

// Load results are tagged with the cursor the request was issued for.
// Update drops any message whose cursor no longer matches the active one,
// which is how rapid navigation "cancels" in-flight requests.

type meLoadedMsg struct {
	user models.User
	err  error
}

type groupsLoadedMsg struct {
	groups []models.Group
	err    error
}

type membersLoadedMsg struct {
	groupID int
	members []models.Member
	err     error
}

type entriesLoadedMsg struct {
	cursor  journal.Cursor
	entries []models.Entry
	err     error
}

type historyLoadedMsg struct {
	cursor  journal.Cursor
	records []models.DayRecord
	err     error
}

type streakLoadedMsg struct {
	cursor journal.Cursor
	streak models.Streak
	err    error
}

type entrySavedMsg struct {
	cursor  journal.Cursor
	section string
	content string
	err     error
}

type loginDoneMsg struct {
	user  models.User
	token string
	err   error
}

type clearToastMsg struct {
	id int
}
