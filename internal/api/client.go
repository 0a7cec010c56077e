// Package api implements the HTTP client for the HHH service. A single
// Client covers auth, groups, entries, and analytics; how credentials are
// attached to requests is a strategy chosen at construction time, so the
// same client works against cookie-session and bearer-token deployments.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rakesh-arrepu/HHH-sub000/internal/logger"
)

const (
	sessionCookieName      = "session"
	correlationIDHeaderKey = "X-Correlation-ID"

	defaultTimeout = 15 * time.Second
)

// TokenSource supplies the current session token. An empty token means
// the caller is not logged in; requests are then sent unauthenticated and
// the server answers 401.
type TokenSource interface {
	Token() string
}

// Credentials attaches a credential to an outgoing request.
type Credentials interface {
	Apply(req *http.Request)
}

// CookieCredentials sends the session token as the session cookie.
type CookieCredentials struct {
	Source TokenSource
}

func (c CookieCredentials) Apply(req *http.Request) {
	if tok := c.Source.Token(); tok != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tok})
	}
}

// BearerCredentials sends the session token as an Authorization header.
type BearerCredentials struct {
	Source TokenSource
}

func (c BearerCredentials) Apply(req *http.Request) {
	if tok := c.Source.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

// ExpiryNotifier receives the session-expired signal when a non-auth
// request comes back 401.
type ExpiryNotifier interface {
	SessionExpired()
}

// Config holds the dependencies for a Client.
type Config struct {
	BaseURL string
	HTTP    *http.Client
	Creds   Credentials
	Expiry  ExpiryNotifier
}

// Client is the HHH API client.
type Client struct {
	baseURL string
	http    *http.Client
	creds   Credentials
	expiry  ExpiryNotifier
}

// New creates a Client. The base URL must not include the /api prefix.
func New(cfg Config) *Client {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		creds:   cfg.Creds,
		expiry:  cfg.Expiry,
	}
}

// request describes one API call.
type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}

	// authEndpoint suppresses the session-expired signal: a 401 from
	// login/register/password endpoints is a credential failure, not an
	// expired session.
	authEndpoint bool
}

// do executes a request and decodes the JSON response into out (which may
// be nil). It returns the parsed Set-Cookie session token if the server
// issued one.
func (c *Client) do(ctx context.Context, r request, out interface{}) (sessionToken string, err error) {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return "", fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, bodyReader)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	correlationID := uuid.New().String()
	req.Header.Set(correlationIDHeaderKey, correlationID)
	if c.creds != nil {
		c.creds.Apply(req)
	}

	logger.Debug("api request", "method", r.method, "path", r.path, "correlation_id", correlationID)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return "", c.classifyError(resp.StatusCode, respBody, r.authEndpoint)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			sessionToken = cookie.Value
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return "", fmt.Errorf("decoding response: %w", err)
		}
	}
	return sessionToken, nil
}

func (c *Client) classifyError(status int, body []byte, authEndpoint bool) error {
	message, fields := parseErrorBody(body)
	logger.Debug("api error response", "status", status, "message", message)

	switch {
	case status == http.StatusUnauthorized:
		if !authEndpoint && c.expiry != nil {
			c.expiry.SessionExpired()
		}
		return &AuthError{Message: message}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &ValidationError{Message: message, Fields: fields}
	case status == http.StatusNotFound:
		return &NotFoundError{Message: message}
	case status >= 500:
		return &ServerError{StatusCode: status, Message: message}
	default:
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", status)
		}
		return fmt.Errorf("%s (status %d)", message, status)
	}
}

// Health checks the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/api/health"}, nil)
	return err
}
