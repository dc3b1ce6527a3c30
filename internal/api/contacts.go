package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/telvora/telvora-go/internal/types"
)

// bulkFileField is the multipart form field expected by the bulk-contact
// upload endpoint.
const bulkFileField = "bulk_file"

// AddContact adds one or more contacts to a campaign. data may be a single
// contact mapping or a list of them.
func AddContact(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int, data any) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, fmt.Sprintf("campaign/%d/add-contact/", campaignID), RequestOptions{Body: data})
}

// AddBulkContacts submits contacts in bulk, either as a multipart file
// upload or as an inline JSON payload depending on the BulkContacts variant.
func AddBulkContacts(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int, contacts types.BulkContacts) (types.Payload, error) {
	path := fmt.Sprintf("campaign/create/%d/detail/", campaignID)
	if filePath, ok := contacts.FilePath(); ok {
		return Do(ctx, httpClient, baseURL, http.MethodPost, path, RequestOptions{
			File: &FileUpload{Field: bulkFileField, Path: filePath},
		})
	}
	return Do(ctx, httpClient, baseURL, http.MethodPost, path, RequestOptions{Body: contacts.Data()})
}

// ListContacts retrieves the contacts attached to a campaign.
func ListContacts(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int, filters types.Filters) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, fmt.Sprintf("campaign-detail/%d/", campaignID), RequestOptions{Query: filters})
}

// ContactAttributes retrieves the custom attribute schema of a campaign's
// contacts.
func ContactAttributes(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, fmt.Sprintf("campaign/%d/attributes/", campaignID), RequestOptions{})
}

// EditContactAttributes updates the custom attributes of a campaign's
// contacts.
func EditContactAttributes(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int, attributes types.Payload) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPatch, fmt.Sprintf("campaign/%d/attributes/", campaignID), RequestOptions{Body: attributes})
}
