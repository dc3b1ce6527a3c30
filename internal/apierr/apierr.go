// Package apierr defines the single error type surfaced by the SDK.
// Every failed call, whether the transport errored or the remote API
// returned a non-success status, is reported as an *APIError so callers
// branch on message, code and raw payload rather than on error subtypes.
package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError carries the remote error body when one was obtained, else the
// transport-level failure.
type APIError struct {
	// Message is the remote "message" field when present, else the
	// transport-level error text.
	Message string

	// Code is the HTTP status code, or 0 when no response was obtained.
	Code int

	// RawData is the parsed error body, or nil when the body was empty or
	// not valid JSON.
	RawData map[string]any

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("telvora: %s (status %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("telvora: %s", e.Message)
}

// Unwrap returns the underlying transport error, if any, for errors.Is
// and errors.As chains.
func (e *APIError) Unwrap() error { return e.cause }

// FromResponse builds an APIError from a non-success HTTP response body.
// The body's "message" field wins when the body parses as a JSON object;
// otherwise the message falls back to the status text and RawData is nil.
func FromResponse(status int, body []byte) *APIError {
	msg := fmt.Sprintf("%d %s", status, http.StatusText(status))

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return &APIError{Message: msg, Code: status}
	}
	if m, ok := raw["message"].(string); ok && m != "" {
		msg = m
	}
	return &APIError{Message: msg, Code: status, RawData: raw}
}

// FromTransport wraps a connection-level failure where no HTTP response
// exists. Code is 0 and RawData is nil.
func FromTransport(err error) *APIError {
	return &APIError{Message: err.Error(), cause: err}
}
