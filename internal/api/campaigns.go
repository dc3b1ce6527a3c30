package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/telvora/telvora-go/internal/types"
)

// ListCampaigns retrieves campaigns, optionally narrowed by filters such as
// limit, offset and status.
func ListCampaigns(ctx context.Context, httpClient HTTPClient, baseURL string, filters types.Filters) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodGet, "campaign/", RequestOptions{Query: filters})
}

// CreateCampaign creates a new outreach campaign.
func CreateCampaign(ctx context.Context, httpClient HTTPClient, baseURL string, data types.Payload) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, "campaign/create/", RequestOptions{Body: data})
}

// UpdateCampaign modifies an existing campaign.
func UpdateCampaign(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int, data types.Payload) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, fmt.Sprintf("campaign/%d/", campaignID), RequestOptions{Body: data})
}

// DeleteCampaign removes a campaign.
func DeleteCampaign(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodDelete, fmt.Sprintf("campaign/%d/", campaignID), RequestOptions{})
}

// RunCampaign starts execution of a campaign.
func RunCampaign(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPost, fmt.Sprintf("run-campaign/%d/", campaignID), RequestOptions{})
}

// AddVoiceAssistance attaches a voice message to a campaign.
func AddVoiceAssistance(ctx context.Context, httpClient HTTPClient, baseURL string, campaignID int, data types.Payload) (types.Payload, error) {
	return Do(ctx, httpClient, baseURL, http.MethodPatch, fmt.Sprintf("campaign/create/%d/message/", campaignID), RequestOptions{Body: data})
}
