package models

// User is the authenticated account as returned by the auth endpoints.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Group is a tracking group a user belongs to.
type Group struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	OwnerID int    `json:"owner_id"`
	IsOwner bool   `json:"is_owner"`
}

// Member is a group membership row.
type Member struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Entry is a single section entry for one (user, group, date, section).
// The server enforces uniqueness per (group, user, date, section); the
// client never assumes more than one active entry per section.
type Entry struct {
	ID       int    `json:"id"`
	Section  string `json:"section"`
	Content  string `json:"content"`
	Date     string `json:"date"` // YYYY-MM-DD format
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
}

// DayRecord is the server-supplied summary of which sections were
// completed on a given date. Immutable once received.
type DayRecord struct {
	Date              string   `json:"date"` // YYYY-MM-DD format
	CompletedSections []string `json:"completed_sections"`
	IsComplete        bool     `json:"is_complete"`
}

// Streak is the externally computed count of consecutive fully-complete
// days. Consumed, never derived, by the client.
type Streak struct {
	Streak           int    `json:"streak"`
	LastCompleteDate string `json:"last_complete_date,omitempty"`
}
