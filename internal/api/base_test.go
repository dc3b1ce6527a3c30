package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/telvora/telvora-go/internal/apierr"
	"github.com/telvora/telvora-go/internal/types"
)

type errRT struct{}

func (errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestDo_QueryEncoding(t *testing.T) {
	t.Parallel()
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := Do(context.Background(), srv.Client(), srv.URL, http.MethodGet, "campaign/", RequestOptions{
		Query: types.Filters{"limit": "5", "offset": "0", "status": "Not Started"},
	})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if gotURI != "/campaign/?limit=5&offset=0&status=Not+Started" {
		t.Fatalf("unexpected request URI: %s", gotURI)
	}
}

func TestDo_DefaultHeaders(t *testing.T) {
	t.Parallel()
	var accept, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if _, err := Do(context.Background(), srv.Client(), srv.URL, http.MethodPost, "campaign/create/", RequestOptions{Body: types.Payload{"name": "c"}}); err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if accept != "application/json" {
		t.Errorf("expected Accept=application/json, got %s", accept)
	}
	if contentType != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", contentType)
	}
}

func TestDo_EmptyBodyDecodesToEmptyPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	got, err := Do(context.Background(), srv.Client(), srv.URL, http.MethodDelete, "campaign/1/", RequestOptions{})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty payload, got %#v", got)
	}
}

func TestDo_NonJSONSuccessBodyDecodesToEmptyPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	got, err := Do(context.Background(), srv.Client(), srv.URL, http.MethodGet, "auths/user-profile/", RequestOptions{})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty payload, got %#v", got)
	}
}

func TestDo_ErrorBodyWithMessageField(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "invalid token"}`))
	}))
	defer srv.Close()

	_, err := Do(context.Background(), srv.Client(), srv.URL, http.MethodGet, "campaign/", RequestOptions{})
	if err == nil {
		t.Fatal("expected error for 401")
	}
	var ae *apierr.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.APIError, got %T", err)
	}
	if ae.Message != "invalid token" {
		t.Errorf("expected message 'invalid token', got %q", ae.Message)
	}
	if ae.Code != http.StatusUnauthorized {
		t.Errorf("expected code 401, got %d", ae.Code)
	}
	if msg, ok := ae.RawData["message"].(string); !ok || msg != "invalid token" {
		t.Errorf("expected RawData to carry parsed body, got %#v", ae.RawData)
	}
}

func TestDo_ErrorBodyWithoutMessageField(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "bad payload"}`))
	}))
	defer srv.Close()

	_, err := Do(context.Background(), srv.Client(), srv.URL, http.MethodPost, "campaign/create/", RequestOptions{})
	var ae *apierr.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.APIError, got %v", err)
	}
	if ae.Message != "400 Bad Request" {
		t.Errorf("expected status text fallback, got %q", ae.Message)
	}
	if ae.RawData == nil {
		t.Error("expected RawData to carry parsed body")
	}
}

func TestDo_UnparseableErrorBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	_, err := Do(context.Background(), srv.Client(), srv.URL, http.MethodGet, "campaign/", RequestOptions{})
	var ae *apierr.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.APIError, got %v", err)
	}
	if ae.RawData != nil {
		t.Errorf("expected nil RawData for unparseable body, got %#v", ae.RawData)
	}
	if ae.Code != http.StatusInternalServerError {
		t.Errorf("expected code 500, got %d", ae.Code)
	}
	if ae.Message != "500 Internal Server Error" {
		t.Errorf("expected transport-level message, got %q", ae.Message)
	}
}

func TestDo_TransportFailure(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: errRT{}}

	_, err := Do(context.Background(), hc, "http://example.com", http.MethodGet, "campaign/", RequestOptions{})
	var ae *apierr.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.APIError, got %v", err)
	}
	if ae.Code != 0 {
		t.Errorf("expected code 0 for connection failure, got %d", ae.Code)
	}
	if ae.RawData != nil {
		t.Errorf("expected nil RawData, got %#v", ae.RawData)
	}
}

func TestDo_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dummy := httptest.NewServer(http.NotFoundHandler())
	defer dummy.Close()
	if _, err := Do(ctx, dummy.Client(), dummy.URL, http.MethodGet, "campaign/", RequestOptions{}); err == nil {
		t.Fatal("expected context canceled")
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()
	cases := []struct {
		base, path, want string
	}{
		{"http://api.example.com", "campaign/", "http://api.example.com/campaign/"},
		{"http://api.example.com/", "campaign/", "http://api.example.com/campaign/"},
		{"http://api.example.com/", "/campaign/", "http://api.example.com/campaign/"},
	}
	for _, tc := range cases {
		if got := joinURL(tc.base, tc.path); got != tc.want {
			t.Errorf("joinURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}
