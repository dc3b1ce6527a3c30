package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/telvora/telvora-go/internal/types"
)

// ActiveBrokerPhones lists broker phone numbers available to the account.
func ActiveBrokerPhones(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, "active-broker-phone/", RequestOptions{})
}

// ActiveUserPhones lists the account's own active phone numbers.
func ActiveUserPhones(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, "phone-number/active/", RequestOptions{})
}

// UpdateContactNumber changes the phone number stored for a contact.
func UpdateContactNumber(ctx context.Context, httpClient HTTPClient, baseURL string, contactID int, req types.UpdateNumberRequest) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPatch, fmt.Sprintf("phone-number/update/%d/", contactID), RequestOptions{Body: req})
}

// DeleteContact removes a contact's phone number record.
func DeleteContact(ctx context.Context, httpClient HTTPClient, baseURL string, contactID int) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodDelete, fmt.Sprintf("phone-number/delete/%d/", contactID), RequestOptions{})
}
