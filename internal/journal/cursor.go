// Package journal implements the daily-tracking state engine: the view
// cursor, the section entry store, the perspective gate, and the
// completion transition detectors. Everything here is synchronous state
// manipulation; network calls live in the api package and their results
// are applied back through cursor-keyed methods so late responses for a
// stale cursor are discarded.
package journal

import (
	"time"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/utils"
)

// Cursor identifies the (group, date, viewed-user) triple every load and
// save is issued for. UserID is the effective viewed user; zero means the
// caller's own data.
type Cursor struct {
	GroupID int
	Date    string // YYYY-MM-DD format
	UserID  int
}

// SameView reports whether two cursors address the same (group, user)
// pair, ignoring the date. The filled-date index is scoped per view, not
// per day.
func (c Cursor) SameView(other Cursor) bool {
	return c.GroupID == other.GroupID && c.UserID == other.UserID
}

// DayCursor is the day-level navigation state. Transitions that would
// land on a future date are silent no-ops; the bound is enforced here,
// not in the UI, so rapid or programmatic calls cannot pass today.
type DayCursor struct {
	date string
	now  func() time.Time
}

// NewDayCursor creates a cursor positioned on today. now defaults to
// time.Now and is injectable for tests.
func NewDayCursor(now func() time.Time) *DayCursor {
	if now == nil {
		now = time.Now
	}
	return &DayCursor{date: now().Format(constants.DateFormat), now: now}
}

// Date returns the selected date (YYYY-MM-DD).
func (c *DayCursor) Date() string {
	return c.date
}

func (c *DayCursor) today() string {
	return c.now().Format(constants.DateFormat)
}

// IsToday reports whether the cursor is on today's date.
func (c *DayCursor) IsToday() bool {
	return c.date == c.today()
}

// PrevDay moves the cursor back one day.
func (c *DayCursor) PrevDay() {
	c.date = utils.ShiftDate(c.date, -1)
}

// NextDay moves the cursor forward one day, stopping at today.
func (c *DayCursor) NextDay() {
	next := utils.ShiftDate(c.date, 1)
	if utils.AfterDate(next, c.today()) {
		return
	}
	c.date = next
}

// Today resets the cursor to today's date.
func (c *DayCursor) Today() {
	c.date = c.today()
}

// Select moves the cursor to d. Future dates are ignored without error.
func (c *DayCursor) Select(d string) {
	if _, err := utils.ParseDate(d); err != nil {
		return
	}
	if utils.AfterDate(d, c.today()) {
		return
	}
	c.date = d
}
