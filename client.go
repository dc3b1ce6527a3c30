package telvora

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/telvora/telvora-go/internal/api"
)

// Client is the entry point for all Telvora API operations. Construct it
// once with New or NewFromEnv and share it freely; all methods are safe for
// concurrent use.
type Client struct {
	baseURL     string
	http        *http.Client
	staticToken string

	mu           sync.RWMutex
	sessionToken string
}

// New constructs a Client from cfg. Additional behaviour can be supplied
// via functional options.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL must be set")
	}

	c := &Client{
		baseURL:     cfg.BaseURL,
		staticToken: cfg.APIToken,
		http:        &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap HTTP transport to add the Authorization header per request.
	c.wrapTransportWithAuth()

	return c, nil
}

// NewFromEnv constructs a Client from TELVORA_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// SetAuthToken installs a session token that takes precedence over the
// configured static API token for all subsequent requests.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.sessionToken = token
	c.mu.Unlock()
}

// ClearAuthToken removes the session token, falling back to the configured
// static API token (or unauthenticated requests when none is configured).
func (c *Client) ClearAuthToken() { c.SetAuthToken("") }

// resolveToken returns the token to use for the next request: the session
// token when set, else the static token, else "".
func (c *Client) resolveToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sessionToken != "" {
		return c.sessionToken
	}
	return c.staticToken
}

// wrapTransportWithAuth wraps the HTTP client's transport so every request
// carries the currently resolvable bearer token.
func (c *Client) wrapTransportWithAuth() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &authTransport{
		base:  baseTransport,
		token: c.resolveToken,
	}
}

// authTransport wraps an http.RoundTripper to add the Authorization header.
// The token is snapshotted once per request, so mutating the session token
// never affects requests already in flight.
type authTransport struct {
	base  http.RoundTripper
	token func() string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok := t.token()
	if tok == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Login exchanges account credentials for session tokens. The returned
// payload carries the remote token fields; the client state is untouched.
func (c *Client) Login(ctx context.Context, req LoginRequest) (Payload, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// Authenticate logs in with the given credentials and, when the response
// carries an "access" token, installs it as the session token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (Payload, error) {
	payload, err := api.Login(ctx, c.http, c.baseURL, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if access, ok := payload["access"].(string); ok && access != "" {
		c.SetAuthToken(access)
	}
	return payload, nil
}

// RefreshToken exchanges a refresh token for a fresh access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (Payload, error) {
	return api.RefreshToken(ctx, c.http, c.baseURL, RefreshRequest{Refresh: refresh})
}

// GenerateAPIKeys creates a new static API key pair for the account.
func (c *Client) GenerateAPIKeys(ctx context.Context) (Payload, error) {
	return api.GenerateAPIKeys(ctx, c.http, c.baseURL)
}

// GetAPIKeys lists the account's existing static API keys.
func (c *Client) GetAPIKeys(ctx context.Context) (Payload, error) {
	return api.GetAPIKeys(ctx, c.http, c.baseURL)
}

// UserDetail retrieves the authenticated user's profile.
func (c *Client) UserDetail(ctx context.Context) (Payload, error) {
	return api.UserDetail(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Phone number operations - delegated to internal/api
// --------------------------------------------------------------------

// ActiveBrokerPhones lists broker phone numbers available to the account.
func (c *Client) ActiveBrokerPhones(ctx context.Context) (Payload, error) {
	return api.ActiveBrokerPhones(ctx, c.http, c.baseURL)
}

// ActiveUserPhones lists the account's own active phone numbers.
func (c *Client) ActiveUserPhones(ctx context.Context) (Payload, error) {
	return api.ActiveUserPhones(ctx, c.http, c.baseURL)
}

// UpdateContactNumber changes the phone number stored for a contact.
func (c *Client) UpdateContactNumber(ctx context.Context, contactID int, number string) (Payload, error) {
	return api.UpdateContactNumber(ctx, c.http, c.baseURL, contactID, UpdateNumberRequest{Number: number})
}

// DeleteContact removes a contact's phone number record.
func (c *Client) DeleteContact(ctx context.Context, contactID int) (Payload, error) {
	return api.DeleteContact(ctx, c.http, c.baseURL, contactID)
}

// --------------------------------------------------------------------
// Campaign operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCampaigns retrieves campaigns, optionally narrowed by filters such as
// limit, offset and status.
func (c *Client) ListCampaigns(ctx context.Context, filters Filters) (Payload, error) {
	return api.ListCampaigns(ctx, c.http, c.baseURL, filters)
}

// CreateCampaign creates a new outreach campaign.
func (c *Client) CreateCampaign(ctx context.Context, data Payload) (Payload, error) {
	return api.CreateCampaign(ctx, c.http, c.baseURL, data)
}

// UpdateCampaign modifies an existing campaign.
func (c *Client) UpdateCampaign(ctx context.Context, campaignID int, data Payload) (Payload, error) {
	return api.UpdateCampaign(ctx, c.http, c.baseURL, campaignID, data)
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, campaignID int) (Payload, error) {
	return api.DeleteCampaign(ctx, c.http, c.baseURL, campaignID)
}

// RunCampaign starts execution of a campaign.
func (c *Client) RunCampaign(ctx context.Context, campaignID int) (Payload, error) {
	return api.RunCampaign(ctx, c.http, c.baseURL, campaignID)
}

// AddVoiceAssistance attaches a voice message to a campaign.
func (c *Client) AddVoiceAssistance(ctx context.Context, campaignID int, data Payload) (Payload, error) {
	return api.AddVoiceAssistance(ctx, c.http, c.baseURL, campaignID, data)
}

// --------------------------------------------------------------------
// Contact operations - delegated to internal/api
// --------------------------------------------------------------------

// AddContact adds one or more contacts to a campaign. data may be a single
// contact mapping or a list of them.
func (c *Client) AddContact(ctx context.Context, campaignID int, data any) (Payload, error) {
	return api.AddContact(ctx, c.http, c.baseURL, campaignID, data)
}

// AddBulkContacts submits contacts in bulk. Use BulkContactsFile to upload
// a local file as a multipart attachment, or BulkContactsData to submit an
// inline JSON payload.
func (c *Client) AddBulkContacts(ctx context.Context, campaignID int, contacts BulkContacts) (Payload, error) {
	return api.AddBulkContacts(ctx, c.http, c.baseURL, campaignID, contacts)
}

// ListContacts retrieves the contacts attached to a campaign.
func (c *Client) ListContacts(ctx context.Context, campaignID int, filters Filters) (Payload, error) {
	return api.ListContacts(ctx, c.http, c.baseURL, campaignID, filters)
}

// ContactAttributes retrieves the custom attribute schema of a campaign's
// contacts.
func (c *Client) ContactAttributes(ctx context.Context, campaignID int) (Payload, error) {
	return api.ContactAttributes(ctx, c.http, c.baseURL, campaignID)
}

// EditContactAttributes updates the custom attributes of a campaign's
// contacts.
func (c *Client) EditContactAttributes(ctx context.Context, campaignID int, attributes Payload) (Payload, error) {
	return api.EditContactAttributes(ctx, c.http, c.baseURL, campaignID, attributes)
}

// --------------------------------------------------------------------
// OTP operations - delegated to internal/api
// --------------------------------------------------------------------

// SendOTP delivers a one-time password via voice or SMS.
func (c *Client) SendOTP(ctx context.Context, data Payload) (Payload, error) {
	return api.SendOTP(ctx, c.http, c.baseURL, data)
}

// ListSentOTPs retrieves previously sent one-time passwords.
func (c *Client) ListSentOTPs(ctx context.Context, filters Filters) (Payload, error) {
	return api.ListSentOTPs(ctx, c.http, c.baseURL, filters)
}
