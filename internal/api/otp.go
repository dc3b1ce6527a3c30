package api

import (
	"context"
	"net/http"

	"github.com/telvora/telvora-go/internal/types"
)

// SendOTP delivers a one-time password via voice or SMS.
func SendOTP(ctx context.Context, httpClient HTTPClient, baseURL string, data types.Payload) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, "auths/send/otp/", RequestOptions{Body: data})
}

// ListSentOTPs retrieves previously sent one-time passwords, optionally
// narrowed by filters.
func ListSentOTPs(ctx context.Context, httpClient HTTPClient, baseURL string, filters types.Filters) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, "auths/list/send-otps/", RequestOptions{Query: filters})
}
