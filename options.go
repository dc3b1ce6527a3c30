package telvora

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is
// installed, so transport-related options (like debug logging) are placed
// underneath the bearer-token wrapper. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The client's
// transport is still wrapped by the bearer-token layer after options run.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the bearer-token wrapper. Do not
// enable this option in production environments; dumps include headers and
// bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
