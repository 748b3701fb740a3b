package dialfire

import (
	"context"
	"io"
	"time"
)

// Client is the entry point to the Dialfire API. Dialfire issues tokens per
// tenant and per campaign, so the client hands out scope-bound sub-clients
// rather than holding a single credential itself.
type Client interface {
	// Campaign returns a client scoped to one campaign, authenticated with
	// that campaign's API token.
	Campaign(campaignID, token string) CampaignAPI

	// Tenant returns a client scoped to one tenant, authenticated with that
	// tenant's API token.
	Tenant(tenantID, token string) TenantAPI
}

// CampaignAPI covers the campaign-scoped endpoints: resource files, tasks,
// the do-not-call list, and contact records.
type CampaignAPI interface {
	// GetFile fetches a file from the campaign's resources folder. The path
	// may point into sub-folders; read access to the "public" sub-folder
	// needs no authorization on the vendor side.
	GetFile(ctx context.Context, path string) (*PagedResponse, error)

	// PutFile uploads a file to the campaign's resources folder.
	PutFile(ctx context.Context, filename string, file io.Reader) (*PagedResponse, error)

	// DeleteFile removes a file from the campaign's resources folder.
	DeleteFile(ctx context.Context, path string) (*PagedResponse, error)

	// ListTasks fetches all tasks of the campaign.
	ListTasks(ctx context.Context) (*PagedResponse, error)

	// GetDoNotCall fetches the campaign's do-not-call list.
	GetDoNotCall(ctx context.Context) (*PagedResponse, error)

	// DeleteDoNotCallFiltered deletes the do-not-call entries matching the
	// filter.
	DeleteDoNotCallFiltered(ctx context.Context, filter []FilterClause) (*PagedResponse, error)

	// DeleteDoNotCallRange deletes all do-not-call entries within the date
	// range.
	DeleteDoNotCallRange(ctx context.Context, from, to time.Time) (*PagedResponse, error)

	// GetContactFlatView fetches a detailed view of one contact record
	// including the task log.
	GetContactFlatView(ctx context.Context, contactID string) (*PagedResponse, error)

	// GetContactsFlatView fetches a batch of flat view records for the
	// contacts matching the filter.
	GetContactsFlatView(ctx context.Context, filter []FilterClause) (*PagedResponse, error)

	// FilterContacts searches contacts inside the campaign. Drive pagination
	// through the returned page's NextPage; pass the zero cursor for the
	// first page.
	FilterContacts(ctx context.Context, filter []FilterClause, cursor string, limit int) (*PagedResponse, error)

	// CreateContact creates a contact record in an existing task. Ref is an
	// external reference (typically the record id of an external CRM) stored
	// as $ref; phone lands in $phone and is re-formatted vendor-side
	// according to country settings.
	CreateContact(ctx context.Context, taskName, ref, phone string, data map[string]interface{}) (*PagedResponse, error)

	// UpdateContact updates fields of an existing contact.
	UpdateContact(ctx context.Context, contactID string, data map[string]interface{}) (*PagedResponse, error)
}

// TenantAPI covers the tenant-scoped endpoints: users, lines, campaigns,
// activity reporting, and the tenant-wide do-not-call list.
type TenantAPI interface {
	// ListUsers fetches the tenant's users.
	ListUsers(ctx context.Context) (*PagedResponse, error)

	// ListLines fetches the tenant's inbound/outbound lines.
	ListLines(ctx context.Context) (*PagedResponse, error)

	// ListCampaigns fetches the campaigns belonging to the tenant.
	ListCampaigns(ctx context.Context) (*PagedResponse, error)

	// GetActivityReport fetches the tenant activity report for the date
	// range.
	GetActivityReport(ctx context.Context, from, to time.Time) (*PagedResponse, error)

	// GetDoNotCall fetches the tenant-wide do-not-call list.
	GetDoNotCall(ctx context.Context) (*PagedResponse, error)

	// DeleteDoNotCallFiltered deletes the tenant do-not-call entries matching
	// the filter.
	DeleteDoNotCallFiltered(ctx context.Context, filter []FilterClause) (*PagedResponse, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dialfire.Client.
// The zero value is usable: the endpoint defaults to the vendor's fixed API
// origin and the transport performs exactly one attempt per request.
type Config struct {
	// APIEndpoint overrides the Dialfire API origin. Intended for tests;
	// leave empty for production use.
	APIEndpoint string

	// UserAgent is sent with every request when set.
	UserAgent string

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives debug output. Optional.
	Logger Logger

	// HTTPTimeout bounds each HTTP exchange. Zero means the default.
	HTTPTimeout time.Duration

	// RetryMax enables transport-level retries when positive. The default of
	// zero keeps the engine at one attempt per call.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}
