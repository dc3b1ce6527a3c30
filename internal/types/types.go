package types

// ------------------------------
// Generic payload shapes
// ------------------------------

// Payload is a decoded JSON object as returned by the remote API. Endpoints
// with empty or non-JSON success bodies yield an empty Payload.
type Payload map[string]any

// Filters holds query-string parameters for list endpoints.
type Filters map[string]string

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds account credentials for session login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// UpdateNumberRequest changes the phone number stored for a contact.
type UpdateNumberRequest struct {
	Number string `json:"number"`
}
