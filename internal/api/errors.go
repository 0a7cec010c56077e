package api

import (
	"encoding/json"
	"fmt"
)

// NetworkError wraps a transport-level failure (connection refused, DNS,
// timeout). The request never produced an HTTP status.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthError is a 401 from the server. Outside of the auth endpoints
// themselves it also triggers the client's session-expired listener.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication required"
	}
	return e.Message
}

// ValidationError is a 400/422 carrying field-level detail.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// NotFoundError is a 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

// ServerError is any 5xx.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// errorDetail is the server's error envelope. The detail field is either
// a plain string or a list of {loc, msg} objects for field validation.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

func parseErrorBody(body []byte) (message string, fields map[string]string) {
	var envelope errorDetail
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return "", nil
	}

	var plain string
	if err := json.Unmarshal(envelope.Detail, &plain); err == nil {
		return plain, nil
	}

	var items []struct {
		Loc []json.RawMessage `json:"loc"`
		Msg string            `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		fields = make(map[string]string, len(items))
		for _, item := range items {
			field := "request"
			if len(item.Loc) > 0 {
				var name string
				if json.Unmarshal(item.Loc[len(item.Loc)-1], &name) == nil && name != "" {
					field = name
				}
			}
			fields[field] = item.Msg
			if message == "" {
				message = item.Msg
			}
		}
		return message, fields
	}

	return string(envelope.Detail), nil
}
