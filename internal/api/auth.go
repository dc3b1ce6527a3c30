package api

import (
	"context"
	"net/http"

	"github.com/telvora/telvora-go/internal/types"
)

// Login exchanges account credentials for session tokens.
func Login(ctx context.Context, httpClient HTTPClient, baseURL string, req types.LoginRequest) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, "auths/login/", RequestOptions{Body: req})
}

// RefreshToken exchanges a refresh token for a fresh access token.
func RefreshToken(ctx context.Context, httpClient HTTPClient, baseURL string, req types.RefreshRequest) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, "auths/login/refresh/", RequestOptions{Body: req})
}

// GenerateAPIKeys creates a new static API key pair for the account.
func GenerateAPIKeys(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, "auths/generate-api-keys/", RequestOptions{})
}

// GetAPIKeys lists the account's existing static API keys.
func GetAPIKeys(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, "auths/get-api-keys/", RequestOptions{})
}

// UserDetail retrieves the authenticated user's profile.
func UserDetail(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, "auths/user-profile/", RequestOptions{})
}
