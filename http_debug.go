package telvora

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication issues (malformed requests, unexpected
// responses, authentication failures).
//
// Enable it with WithDebugLogging or by setting TELVORA_DEBUG=true or
// DEBUG=true. Dumps include full headers and bodies, tokens included, so
// keep it out of production environments and secure any captured logs.
//
// Each round trip is tagged with a generated request id so the request and
// response lines can be correlated in interleaved output.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	reqID := uuid.NewString()
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Set TELVORA_DEBUG=true for targeted SDK debugging, or DEBUG=true when a
// broader application debug flag should also capture HTTP traffic. Both are
// compared case-sensitively against "true".
func debugLoggingRequested() bool {
	return os.Getenv("TELVORA_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
