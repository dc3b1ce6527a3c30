package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/telvora/telvora-go/internal/apierr"
	"github.com/telvora/telvora-go/internal/types"
)

// HTTPClient interface for dependency injection. The root package supplies
// an *http.Client whose transport handles authorization.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestOptions carries the optional parts of an endpoint call. At most one
// of Body and File should be set; File wins when both are present.
type RequestOptions struct {
	Body  any           // JSON-encoded request body
	Query types.Filters // query-string parameters
	File  *FileUpload   // multipart file upload
}

// FileUpload names a local file to attach as a multipart form field.
type FileUpload struct {
	Field string
	Path  string
}

// Do issues a single HTTP round trip against baseURL+path and decodes the
// JSON response body.
//
// Success (2xx): the body is parsed as a JSON object; an empty or non-JSON
// body yields an empty Payload, never an error. Failure (non-2xx status or
// connection error): the error is an *apierr.APIError carrying the remote
// message, status code and parsed body when available.
func Do(ctx context.Context, httpClient HTTPClient, baseURL, method, path string, opts RequestOptions) (types.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint := joinURL(baseURL, path)
	if len(opts.Query) > 0 {
		q := url.Values{}
		for k, v := range opts.Query {
			q.Set(k, v)
		}
		endpoint += "?" + q.Encode()
	}

	var body io.Reader
	contentType := "application/json"
	switch {
	case opts.File != nil:
		buf, ct, err := encodeMultipart(opts.File)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case opts.Body != nil:
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", contentType)
	// Note: Authorization header is added by the transport layer.

	start := time.Now()
	resp, err := httpClient.Do(httpReq)
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		requestErrorsTotal.WithLabelValues(method).Inc()
		return nil, apierr.FromTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		requestErrorsTotal.WithLabelValues(method).Inc()
		return nil, apierr.FromTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		requestErrorsTotal.WithLabelValues(method).Inc()
		return nil, apierr.FromResponse(resp.StatusCode, data)
	}

	requestsTotal.WithLabelValues(method).Inc()

	var out types.Payload
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		// Lenient on success: empty or non-JSON bodies decode to an empty
		// mapping.
		return types.Payload{}, nil
	}
	return out, nil
}

// joinURL joins the configured base URL and a relative endpoint path with
// exactly one separating slash.
func joinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// encodeMultipart reads the file and builds a multipart form body with the
// file's basename as the attachment filename.
func encodeMultipart(f *FileUpload) (*bytes.Buffer, string, error) {
	src, err := os.Open(f.Path)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = src.Close() }()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile(f.Field, filepath.Base(f.Path))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
