package client

import (
	"context"
	"fmt"
	"time"

	"github.com/armitxes/dialfire-go/internal/auth"
	"github.com/armitxes/dialfire-go/internal/http"
	"github.com/armitxes/dialfire-go/pkg/dialfire"
)

// TenantClient implements dialfire.TenantAPI. Every call is prefixed with the
// tenant scope and authenticated with the tenant's token.
type TenantClient struct {
	httpClient *http.Client
	tenantID   string
	tokens     auth.TokenProvider
}

// NewTenantClient creates a client scoped to one tenant.
func NewTenantClient(httpClient *http.Client, tenantID, token string) *TenantClient {
	return &TenantClient{
		httpClient: httpClient,
		tenantID:   tenantID,
		tokens:     auth.StaticToken(token),
	}
}

// request sends one engine call under the tenant scope and converts
// non-success statuses into an *dialfire.APIError.
func (c *TenantClient) request(ctx context.Context, spec *dialfire.RequestSpec) (*dialfire.PagedResponse, error) {
	page, err := c.httpClient.Do(ctx, c.tokens, spec)
	if err != nil {
		return nil, err
	}

	if err := page.Err(); err != nil {
		return nil, err
	}

	return page, nil
}

// spec builds a tenant-scoped request spec.
func (c *TenantClient) spec(method, suburl string) *dialfire.RequestSpec {
	return dialfire.NewRequestSpec(method, "tenants/"+c.tenantID+"/"+suburl)
}

// ListUsers implements dialfire.TenantAPI.ListUsers.
func (c *TenantClient) ListUsers(ctx context.Context) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "users"))
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return page, nil
}

// ListLines implements dialfire.TenantAPI.ListLines.
func (c *TenantClient) ListLines(ctx context.Context) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "lines"))
	if err != nil {
		return nil, fmt.Errorf("listing lines: %w", err)
	}

	return page, nil
}

// ListCampaigns implements dialfire.TenantAPI.ListCampaigns.
func (c *TenantClient) ListCampaigns(ctx context.Context) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "campaigns"))
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}

	return page, nil
}

// GetActivityReport implements dialfire.TenantAPI.GetActivityReport.
func (c *TenantClient) GetActivityReport(ctx context.Context, from, to time.Time) (*dialfire.PagedResponse, error) {
	spec := c.spec("POST", "activity/report")
	spec.Payload = dialfire.FilterPayload{
		{Values: []interface{}{dialfire.FormatTime(from)}, Field: "date_from"},
		{Values: []interface{}{dialfire.FormatTime(to)}, Field: "date_to"},
	}

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("getting activity report: %w", err)
	}

	return page, nil
}

// GetDoNotCall implements dialfire.TenantAPI.GetDoNotCall.
func (c *TenantClient) GetDoNotCall(ctx context.Context) (*dialfire.PagedResponse, error) {
	page, err := c.request(ctx, c.spec("GET", "donotcall"))
	if err != nil {
		return nil, fmt.Errorf("getting do-not-call list: %w", err)
	}

	return page, nil
}

// DeleteDoNotCallFiltered implements dialfire.TenantAPI.DeleteDoNotCallFiltered.
func (c *TenantClient) DeleteDoNotCallFiltered(ctx context.Context, filter []dialfire.FilterClause) (*dialfire.PagedResponse, error) {
	spec := c.spec("POST", "donotcall/delete")
	spec.Payload = dialfire.FilterPayload(filter)

	page, err := c.request(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("deleting do-not-call entries: %w", err)
	}

	return page, nil
}
