package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type expiryRecorder struct {
	fired int
}

func (r *expiryRecorder) SessionExpired() { r.fired++ }

func newTestClient(t *testing.T, handler http.Handler, creds Credentials, expiry ExpiryNotifier) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := New(Config{
		BaseURL: server.URL,
		HTTP:    server.Client(),
		Creds:   creds,
		Expiry:  expiry,
	})
	return client, server
}

func TestClientAttachesCorrelationID(t *testing.T) {
	var got string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Correlation-ID")
		w.Write([]byte(`{"status":"ok"}`))
	}), nil, nil)

	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if got == "" {
		t.Errorf("request missing X-Correlation-ID header")
	}
}

func TestCookieCredentials(t *testing.T) {
	var got string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("session"); err == nil {
			got = cookie.Value
		}
		w.Write([]byte(`{}`))
	}), CookieCredentials{Source: staticToken("tok-1")}, nil)

	client.Health(context.Background())
	if got != "tok-1" {
		t.Errorf("session cookie = %q, want tok-1", got)
	}
}

func TestBearerCredentials(t *testing.T) {
	var got string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}), BearerCredentials{Source: staticToken("tok-2")}, nil)

	client.Health(context.Background())
	if got != "Bearer tok-2" {
		t.Errorf("Authorization = %q, want Bearer tok-2", got)
	}
}

func TestEmptyTokenSendsNoCredential(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err == nil {
			t.Errorf("session cookie sent for empty token")
		}
		w.Write([]byte(`{}`))
	}), CookieCredentials{Source: staticToken("")}, nil)

	client.Health(context.Background())
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 maps to AuthError",
			status: http.StatusUnauthorized,
			body:   `{"detail":"Invalid or expired session"}`,
			check: func(t *testing.T, err error) {
				var authErr *AuthError
				if !errors.As(err, &authErr) {
					t.Fatalf("error = %v, want *AuthError", err)
				}
				if authErr.Message != "Invalid or expired session" {
					t.Errorf("Message = %q", authErr.Message)
				}
			},
		},
		{
			name:   "400 maps to ValidationError",
			status: http.StatusBadRequest,
			body:   `{"detail":"Invalid section"}`,
			check: func(t *testing.T, err error) {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("error = %v, want *ValidationError", err)
				}
			},
		},
		{
			name:   "422 carries field detail",
			status: http.StatusUnprocessableEntity,
			body:   `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"}]}`,
			check: func(t *testing.T, err error) {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("error = %v, want *ValidationError", err)
				}
				if valErr.Fields["email"] == "" {
					t.Errorf("Fields missing email detail: %v", valErr.Fields)
				}
			},
		},
		{
			name:   "404 maps to NotFoundError",
			status: http.StatusNotFound,
			body:   `{"detail":"Not found"}`,
			check: func(t *testing.T, err error) {
				var nfErr *NotFoundError
				if !errors.As(err, &nfErr) {
					t.Fatalf("error = %v, want *NotFoundError", err)
				}
			},
		},
		{
			name:   "500 maps to ServerError",
			status: http.StatusInternalServerError,
			body:   `{"detail":"boom"}`,
			check: func(t *testing.T, err error) {
				var srvErr *ServerError
				if !errors.As(err, &srvErr) {
					t.Fatalf("error = %v, want *ServerError", err)
				}
				if srvErr.StatusCode != http.StatusInternalServerError {
					t.Errorf("StatusCode = %d", srvErr.StatusCode)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}), nil, nil)

			err := client.Health(context.Background())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			tt.check(t, err)
		})
	}
}

func TestNetworkErrorOnTransportFailure(t *testing.T) {
	client := New(Config{BaseURL: "http://127.0.0.1:1", HTTP: &http.Client{}})
	err := client.Health(context.Background())
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
}

func TestUnauthorizedNotifiesExpiry(t *testing.T) {
	recorder := &expiryRecorder{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	}), nil, recorder)

	client.Me(context.Background())
	if recorder.fired != 1 {
		t.Errorf("expiry fired %d times, want 1", recorder.fired)
	}
}

func TestUnauthorizedOnAuthEndpointDoesNotNotifyExpiry(t *testing.T) {
	recorder := &expiryRecorder{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid email or password"}`))
	}), nil, recorder)

	// A bad password is a credential failure, not an expired session.
	client.Login(context.Background(), "user@example.com", "wrong")
	if recorder.fired != 0 {
		t.Errorf("expiry fired %d times, want 0", recorder.fired)
	}
}

func TestLoginCapturesSessionCookie(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "issued-token"})
		w.Write([]byte(`{"id":7,"email":"user@example.com","name":"User"}`))
	}), nil, nil)

	user, token, err := client.Login(context.Background(), "user@example.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "issued-token" {
		t.Errorf("token = %q, want issued-token", token)
	}
	if user.ID != 7 || user.Email != "user@example.com" {
		t.Errorf("user = %+v", user)
	}
}

func TestEntriesQueryParameters(t *testing.T) {
	var query map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`[{"id":1,"section":"health","content":"Ran 5k","date":"2026-08-15","user_id":7,"user_name":"User"}]`))
	}), nil, nil)

	entries, err := client.Entries(context.Background(), 3, "2026-08-15", 7)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Section != "health" {
		t.Fatalf("entries = %+v", entries)
	}
	if got := query["group_id"]; len(got) != 1 || got[0] != "3" {
		t.Errorf("group_id = %v", got)
	}
	if got := query["entry_date"]; len(got) != 1 || got[0] != "2026-08-15" {
		t.Errorf("entry_date = %v", got)
	}
	if got := query["user_id"]; len(got) != 1 || got[0] != "7" {
		t.Errorf("user_id = %v", got)
	}
}

func TestStreakAndHistoryDecode(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/analytics/streak":
			w.Write([]byte(`{"streak":14,"last_complete_date":"2026-08-15"}`))
		case "/api/analytics/history":
			w.Write([]byte(`[{"date":"2026-08-15","completed_sections":["health","happiness","hela"],"is_complete":true},
				{"date":"2026-08-14","completed_sections":["health"],"is_complete":false}]`))
		default:
			http.NotFound(w, r)
		}
	}), nil, nil)

	streak, err := client.Streak(context.Background(), 3, 0)
	if err != nil {
		t.Fatalf("Streak() error = %v", err)
	}
	if streak.Streak != 14 || streak.LastCompleteDate != "2026-08-15" {
		t.Errorf("streak = %+v", streak)
	}

	records, err := client.History(context.Background(), 3, 30, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if !records[0].IsComplete || len(records[0].CompletedSections) != 3 {
		t.Errorf("records[0] = %+v", records[0])
	}
}
