package journal

import (
	"errors"
	"strings"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

var (
	// ErrReadOnly is returned when a save is attempted while viewing
	// another member's data. Rejected locally, before any network call.
	ErrReadOnly = errors.New("cannot save while viewing another member's entries")
	// ErrEmptyContent is returned when the trimmed content is empty.
	ErrEmptyContent = errors.New("entry content cannot be empty")
	// ErrUnknownSection is returned for a section outside the fixed three.
	ErrUnknownSection = errors.New("unknown section")
)

// EntryStore holds the section contents for the active cursor plus the
// filled-date index for the active (group, user) view. Every mutation is
// keyed by the cursor the triggering request was issued for; responses
// that arrive for a stale cursor are dropped.
//
// Two in-flight saves to the same section are not serialized: the last
// response to arrive wins.
type EntryStore struct {
	cursor   Cursor
	readOnly bool
	sections map[string]string
	filled   map[string]bool
}

// NewEntryStore creates an empty store.
func NewEntryStore() *EntryStore {
	return &EntryStore{
		sections: make(map[string]string),
		filled:   make(map[string]bool),
	}
}

// SetCursor points the store at a new (group, date, user) view. Moving to
// a different (group, user) pair also drops the filled-date index, which
// is scoped to the view.
func (s *EntryStore) SetCursor(c Cursor, readOnly bool) {
	if !c.SameView(s.cursor) {
		s.filled = make(map[string]bool)
	}
	s.cursor = c
	s.readOnly = readOnly
}

// Cursor returns the active cursor.
func (s *EntryStore) Cursor() Cursor {
	return s.cursor
}

// ReadOnly reports whether the active view is another member's data.
func (s *EntryStore) ReadOnly() bool {
	return s.readOnly
}

// Replace wholesale-replaces the section map with the server's entries
// for the given cursor. Entries belonging to other users are filtered
// out. Returns false, without touching state, when the cursor no longer
// matches the active one.
func (s *EntryStore) Replace(c Cursor, entries []models.Entry) bool {
	if c != s.cursor {
		return false
	}
	fresh := make(map[string]string, constants.SectionCount)
	for _, e := range entries {
		if c.UserID != 0 && e.UserID != c.UserID {
			continue
		}
		if !constants.ValidSection(e.Section) {
			continue
		}
		fresh[e.Section] = e.Content
	}
	s.sections = fresh
	return true
}

// ValidateSave checks a save locally and returns the trimmed content.
// The read-only check runs before anything else so no network call is
// ever issued for a perspective view.
func (s *EntryStore) ValidateSave(section, content string) (string, error) {
	if s.readOnly {
		return "", ErrReadOnly
	}
	if !constants.ValidSection(section) {
		return "", ErrUnknownSection
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	return trimmed, nil
}

// ApplySave patches exactly one section after a successful remote save
// and marks the cursor date filled. Nothing is written before the server
// confirms, so a failed save leaves the store untouched by construction.
// Returns false when the cursor no longer matches.
func (s *EntryStore) ApplySave(c Cursor, section, content string) bool {
	if c != s.cursor {
		return false
	}
	s.sections[section] = content
	s.filled[c.Date] = true
	return true
}

// Content returns the stored content for a section.
func (s *EntryStore) Content(section string) (string, bool) {
	content, ok := s.sections[section]
	return content, ok
}

// CompletedCount returns how many of the three sections have content for
// the active cursor.
func (s *EntryStore) CompletedCount() int {
	count := 0
	for _, section := range constants.Sections {
		if strings.TrimSpace(s.sections[section]) != "" {
			count++
		}
	}
	return count
}

// IsComplete reports whether all three sections have content.
func (s *EntryStore) IsComplete() bool {
	return s.CompletedCount() == constants.SectionCount
}

// ReplaceFilled rebuilds the filled-date index from a window of day
// records. Only the (group, user) part of the cursor is checked: a date
// change alone does not invalidate the index.
func (s *EntryStore) ReplaceFilled(c Cursor, records []models.DayRecord) bool {
	if !c.SameView(s.cursor) {
		return false
	}
	filled := make(map[string]bool, len(records))
	for _, r := range records {
		if len(r.CompletedSections) > 0 {
			filled[r.Date] = true
		}
	}
	s.filled = filled
	return true
}

// Filled reports whether the date has at least one completed section.
func (s *EntryStore) Filled(date string) bool {
	return s.filled[date]
}
