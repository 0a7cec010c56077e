package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateLogin SessionState = iota
	StateJournal
	StateHistory
	StateGroups
)

const (
	AppName           = "hhh"
	Version           = "v0.3.0"
	DefaultServerURL  = "http://localhost:8000"
	DefaultConfigPath = "~/.config/hhh"

	// KeyringTokenUser is the keyring account name under which the
	// session token is stored.
	KeyringTokenUser = "session-token"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// SectionCount is the number of daily sections a complete day requires.
	SectionCount = 3

	// StreakMilestoneInterval is the streak length interval that triggers
	// a milestone celebration (every full week).
	StreakMilestoneInterval = 7

	// DefaultHistoryDays is the window requested for the filled-date index.
	DefaultHistoryDays = 90
)

// Sections are the three fixed daily categories, in display order.
var Sections = []string{SectionHealth, SectionHappiness, SectionHela}

const (
	SectionHealth    = "health"
	SectionHappiness = "happiness"
	SectionHela      = "hela"
)

// ValidSection reports whether s names one of the three fixed sections.
func ValidSection(s string) bool {
	return s == SectionHealth || s == SectionHappiness || s == SectionHela
}
