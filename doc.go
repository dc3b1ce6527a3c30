// Package telvora is a Go client for the Telvora telephony API: session
// and API-key authentication, phone number listing, campaign management,
// contact management and OTP delivery.
//
// # Basic Usage
//
//	c, err := telvora.New(telvora.Config{
//	    BaseURL:  "https://api.telvora.example/",
//	    APIToken: "my-static-token",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	campaigns, err := c.ListCampaigns(ctx, telvora.Filters{"limit": "5"})
//
// Configuration may also come from TELVORA_* environment variables via
// [NewFromEnv].
//
// # Authentication
//
// Every request carries at most one bearer token: a session token
// installed with [Client.SetAuthToken] (or captured by
// [Client.Authenticate]) takes precedence over the configured static API
// token; with neither set, requests go out unauthenticated. The token is
// snapshotted when a request starts, so SetAuthToken never affects calls
// already in flight.
//
// # Errors
//
// All failures surface as a single [*APIError] carrying the remote message,
// the HTTP status code (0 for connection-level failures) and the parsed
// error body when one was available. Use [AsAPIError] to extract it.
// Nothing is retried locally.
//
// # Debug Logging
//
// Set TELVORA_DEBUG=true (or pass [WithDebugLogging]) to dump full
// requests and responses through zerolog. Dumps include credentials; keep
// this out of production.
package telvora
