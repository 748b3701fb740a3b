package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/armitxes/dialfire-go/internal/auth"
	"github.com/armitxes/dialfire-go/internal/http"
	"github.com/armitxes/dialfire-go/pkg/dialfire"
)

// CampaignClient implements dialfire.CampaignAPI. Every call is prefixed with
// the campaign scope and authenticated with the campaign's token.
type CampaignClient struct {
	httpClient *http.Client
	campaignID string
	tokens     auth.TokenProvider
}

// NewCampaignClient creates a client scoped to one campaign.
func NewCampaignClient(httpClient *http.Client, campaignID, token string) *CampaignClient {
	return &CampaignClient{
		httpClient: httpClient,
		campaignID: campaignID,
		tokens:     auth.StaticToken(token),
	}
}

// request sends one engine call under the campaign scope and converts
// non-success statuses into an *dialfire.APIError.
func (c *CampaignClient) request(ctx context.Context, spec *dialfire.RequestSpec) (*dialfire.PagedResponse, error) {
	page, err := c.httpClient.Do(ctx, c.tokens, spec)
	if err != nil {
		return nil, err
	}

	if err := page.Err(); err != nil {
		return nil, err
	}

	return page, nil
}

// spec builds a campaign-scoped request spec.
func (c *CampaignClient) spec(method, suburl string) *dialfire.RequestSpec {
	return dialfire.NewRequestSpec(method, "campaigns/"+c.campaignID+"/"+suburl)
}

// GetFile implements dialfire.CampaignAPI.GetFile.
func (c *CampaignClient) GetFile(ctx context.Context, path string) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "resources/"+path))
	if err != nil {
		return nil, fmt.Errorf("getting campaign file: %w", err)
	}

	return page, nil
}

// PutFile implements dialfire.CampaignAPI.PutFile.
func (c *CampaignClient) PutFile(ctx context.Context, filename string, file io.Reader) (*dialfire.PagedResponse, error) {
	spec := c.spec("PUT", "resources/"+filename)
	spec.Files = []dialfire.FileAttachment{{Filename: filename, Reader: file}}

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("uploading campaign file: %w", err)
	}

	return page, nil
}

// DeleteFile implements dialfire.CampaignAPI.DeleteFile.
func (c *CampaignClient) DeleteFile(ctx context.Context, path string) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("DELETE", "resources/"+path))
	if err != nil {
		return nil, fmt.Errorf("deleting campaign file: %w", err)
	}

	return page, nil
}

// ListTasks implements dialfire.CampaignAPI.ListTasks.
func (c *CampaignClient) ListTasks(ctx context.Context) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "tasks"))
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	return page, nil
}

// GetDoNotCall implements dialfire.CampaignAPI.GetDoNotCall.
func (c *CampaignClient) GetDoNotCall(ctx context.Context) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "donotcall"))
	if err != nil {
		return nil, fmt.Errorf("getting do-not-call list: %w", err)
	}

	return page, nil
}

// DeleteDoNotCallFiltered implements dialfire.CampaignAPI.DeleteDoNotCallFiltered.
func (c *CampaignClient) DeleteDoNotCallFiltered(ctx context.Context, filter []dialfire.FilterClause) (*dialfire.PagedResponse, error) {
	spec := c.spec("POST", "donotcall/delete")
	spec.Payload = dialfire.FilterPayload(filter)

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("deleting do-not-call entries: %w", err)
	}

	return page, nil
}

// DeleteDoNotCallRange implements dialfire.CampaignAPI.DeleteDoNotCallRange.
func (c *CampaignClient) DeleteDoNotCallRange(ctx context.Context, from, to time.Time) (*dialfire.PagedResponse, error) {
	spec := c.spec("POST", "donotcall/delete")
	spec.Payload = dialfire.FilterPayload{
		{Values: []interface{}{dialfire.FormatTime(from)}, Field: "date_from"},
		{Values: []interface{}{dialfire.FormatTime(to)}, Field: "date_to"},
	}

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("deleting do-not-call range: %w", err)
	}

	return page, nil
}

// GetContactFlatView implements dialfire.CampaignAPI.GetContactFlatView.
func (c *CampaignClient) GetContactFlatView(ctx context.Context, contactID string) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "contacts/"+contactID+"/flat_view"))
	if err != nil {
		return nil, fmt.Errorf("getting contact flat view: %w", err)
	}

	return page, nil
}

// GetContactsFlatView implements dialfire.CampaignAPI.GetContactsFlatView.
func (c *CampaignClient) GetContactsFlatView(ctx context.Context, filter []dialfire.FilterClause) (*dialfire.PagedResponse, error) {
	spec := c.spec("POST", "contacts/flat_view")
	spec.Payload = dialfire.FilterPayload(filter)

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("getting contacts flat view: %w", err)
	}

	return page, nil
}

// FilterContacts implements dialfire.CampaignAPI.FilterContacts.
func (c *CampaignClient) FilterContacts(ctx context.Context, filter []dialfire.FilterClause, cursor string, limit int) (*dialfire.PagedResponse, error) {
	spec := c.spec("POST", "contacts/filter")
	spec.Payload = dialfire.FilterPayload(filter)
	spec.Cursor = cursor
	spec.Limit = limit

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("filtering contacts: %w", err)
	}

	return page, nil
}

// CreateContact implements dialfire.CampaignAPI.CreateContact.
func (c *CampaignClient) CreateContact(ctx context.Context, taskName, ref, phone string, data map[string]interface{}) (*dialfire.PagedResponse, error) {
	payload := make(dialfire.JSONPayload, len(data)+2)
	for key, value := range data {
		payload[key] = value
	}

	payload["$ref"] = ref
	payload["$phone"] = phone

	spec := c.spec("POST", "tasks/"+taskName+"/contacts/create")
	spec.Payload = payload

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	return page, nil
}

// UpdateContact implements dialfire.CampaignAPI.UpdateContact.
func (c *CampaignClient) UpdateContact(ctx context.Context, contactID string, data map[string]interface{}) (*dialfire.PagedResponse, error) {
	spec := c.spec("POST", "contacts/"+contactID+"/update")
	spec.Payload = dialfire.JSONPayload(data)

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}

	return page, nil
}
