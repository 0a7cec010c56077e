package session

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestManagerTokenRoundTrip(t *testing.T) {
	keyring.MockInit()

	m := NewManager()
	if tok := m.Token(); tok != "" {
		t.Fatalf("Token() = %q, want empty before login", tok)
	}

	if err := m.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if tok := m.Token(); tok != "abc123" {
		t.Errorf("Token() = %q, want abc123", tok)
	}

	// A fresh manager reads the persisted token back from the keyring.
	fresh := NewManager()
	if tok := fresh.Token(); tok != "abc123" {
		t.Errorf("fresh manager Token() = %q, want abc123", tok)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if tok := m.Token(); tok != "" {
		t.Errorf("Token() after Clear = %q, want empty", tok)
	}
}

func TestManagerExpiryNotifiesListeners(t *testing.T) {
	keyring.MockInit()

	m := NewManager()
	if err := m.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}

	var fired int
	m.OnExpired(func() { fired++ })
	m.OnExpired(func() { fired++ })

	m.SessionExpired()

	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}
	if tok := m.Token(); tok != "" {
		t.Errorf("Token() after expiry = %q, want empty", tok)
	}
}

func TestManagersDoNotShareListeners(t *testing.T) {
	keyring.MockInit()

	a := NewManager()
	b := NewManager()

	var fired bool
	a.OnExpired(func() { fired = true })

	b.SessionExpired()
	if fired {
		t.Errorf("listener registered on one manager fired from another")
	}
}
