package journal

import (
	"errors"
	"testing"

	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

func TestEntryStoreReplaceSwapsWholeMap(t *testing.T) {
	s := NewEntryStore()
	cursorA := Cursor{GroupID: 1, Date: "2026-08-14", UserID: 7}
	s.SetCursor(cursorA, false)
	s.Replace(cursorA, []models.Entry{
		{Section: "health", Content: "Ran 5k", UserID: 7},
		{Section: "happiness", Content: "Coffee with Sam", UserID: 7},
	})

	if got := s.CompletedCount(); got != 2 {
		t.Fatalf("CompletedCount() = %d, want 2", got)
	}

	// Moving to cursor B and loading must not leak cursor A's sections.
	cursorB := Cursor{GroupID: 1, Date: "2026-08-15", UserID: 7}
	s.SetCursor(cursorB, false)
	s.Replace(cursorB, []models.Entry{
		{Section: "hela", Content: "Read two chapters", UserID: 7},
	})

	if _, ok := s.Content("health"); ok {
		t.Errorf("health entry from cursor A leaked into cursor B")
	}
	if _, ok := s.Content("happiness"); ok {
		t.Errorf("happiness entry from cursor A leaked into cursor B")
	}
	if content, ok := s.Content("hela"); !ok || content != "Read two chapters" {
		t.Errorf("Content(hela) = %q, %v; want %q, true", content, ok, "Read two chapters")
	}
}

func TestEntryStoreReplaceDiscardsStaleCursor(t *testing.T) {
	s := NewEntryStore()
	stale := Cursor{GroupID: 1, Date: "2026-08-14", UserID: 7}
	current := Cursor{GroupID: 1, Date: "2026-08-15", UserID: 7}

	s.SetCursor(stale, false)
	s.SetCursor(current, false)
	s.Replace(current, []models.Entry{{Section: "health", Content: "today", UserID: 7}})

	// A response for the cursor we already navigated away from arrives
	// late. It must be dropped.
	if s.Replace(stale, []models.Entry{{Section: "health", Content: "yesterday", UserID: 7}}) {
		t.Fatalf("Replace accepted a stale cursor")
	}
	if content, _ := s.Content("health"); content != "today" {
		t.Errorf("Content(health) = %q, want %q", content, "today")
	}
}

func TestEntryStoreReplaceFiltersOtherUsers(t *testing.T) {
	s := NewEntryStore()
	cursor := Cursor{GroupID: 1, Date: "2026-08-15", UserID: 7}
	s.SetCursor(cursor, false)
	s.Replace(cursor, []models.Entry{
		{Section: "health", Content: "mine", UserID: 7},
		{Section: "happiness", Content: "someone else's", UserID: 9},
	})

	if _, ok := s.Content("happiness"); ok {
		t.Errorf("entry from another user was kept")
	}
	if content, _ := s.Content("health"); content != "mine" {
		t.Errorf("Content(health) = %q, want %q", content, "mine")
	}
}

func TestEntryStoreValidateSave(t *testing.T) {
	tests := []struct {
		name     string
		readOnly bool
		section  string
		content  string
		want     string
		wantErr  error
	}{
		{
			name:    "valid content is trimmed",
			section: "health",
			content: "  Ran 5k  ",
			want:    "Ran 5k",
		},
		{
			name:    "whitespace-only content rejected",
			section: "health",
			content: "   \t ",
			wantErr: ErrEmptyContent,
		},
		{
			name:    "empty content rejected",
			section: "happiness",
			content: "",
			wantErr: ErrEmptyContent,
		},
		{
			name:    "unknown section rejected",
			section: "fitness",
			content: "something",
			wantErr: ErrUnknownSection,
		},
		{
			name:     "read-only view rejected before anything else",
			readOnly: true,
			section:  "health",
			content:  "Ran 5k",
			wantErr:  ErrReadOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewEntryStore()
			s.SetCursor(Cursor{GroupID: 1, Date: "2026-08-15", UserID: 7}, tt.readOnly)
			got, err := s.ValidateSave(tt.section, tt.content)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateSave() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ValidateSave() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryStoreApplySavePatchesOneSection(t *testing.T) {
	s := NewEntryStore()
	cursor := Cursor{GroupID: 1, Date: "2026-08-15", UserID: 7}
	s.SetCursor(cursor, false)
	s.Replace(cursor, []models.Entry{
		{Section: "happiness", Content: "Sunshine", UserID: 7},
	})

	if !s.ApplySave(cursor, "health", "Ran 5k") {
		t.Fatalf("ApplySave rejected the active cursor")
	}

	if content, _ := s.Content("health"); content != "Ran 5k" {
		t.Errorf("Content(health) = %q, want %q", content, "Ran 5k")
	}
	if content, _ := s.Content("happiness"); content != "Sunshine" {
		t.Errorf("other section touched: Content(happiness) = %q", content)
	}
	if !s.Filled("2026-08-15") {
		t.Errorf("filled-date index did not gain the cursor date")
	}
}

func TestEntryStoreApplySaveDiscardsStaleCursor(t *testing.T) {
	s := NewEntryStore()
	stale := Cursor{GroupID: 1, Date: "2026-08-14", UserID: 7}
	s.SetCursor(stale, false)
	s.SetCursor(Cursor{GroupID: 1, Date: "2026-08-15", UserID: 7}, false)

	if s.ApplySave(stale, "health", "late response") {
		t.Fatalf("ApplySave accepted a stale cursor")
	}
	if _, ok := s.Content("health"); ok {
		t.Errorf("stale save leaked into the active cursor")
	}
}

func TestEntryStoreFilledIndexScopedToView(t *testing.T) {
	s := NewEntryStore()
	cursor := Cursor{GroupID: 1, Date: "2026-08-15", UserID: 7}
	s.SetCursor(cursor, false)
	s.ReplaceFilled(cursor, []models.DayRecord{
		{Date: "2026-08-10", CompletedSections: []string{"health"}},
		{Date: "2026-08-11", CompletedSections: []string{}},
		{Date: "2026-08-12", CompletedSections: []string{"health", "happiness", "hela"}, IsComplete: true},
	})

	if !s.Filled("2026-08-10") || !s.Filled("2026-08-12") {
		t.Errorf("days with completed sections missing from index")
	}
	if s.Filled("2026-08-11") {
		t.Errorf("day with no completed sections marked filled")
	}

	// A date change keeps the index; a user change drops it.
	s.SetCursor(Cursor{GroupID: 1, Date: "2026-08-14", UserID: 7}, false)
	if !s.Filled("2026-08-10") {
		t.Errorf("date change dropped the filled index")
	}
	s.SetCursor(Cursor{GroupID: 1, Date: "2026-08-14", UserID: 9}, true)
	if s.Filled("2026-08-10") {
		t.Errorf("viewed-user change kept the previous member's filled index")
	}
}
