package client

import (
	"github.com/armitxes/dialfire-go/internal/constants"
	"github.com/armitxes/dialfire-go/internal/http"
	"github.com/armitxes/dialfire-go/pkg/dialfire"
)

// Client implements the dialfire.Client interface.
type Client struct {
	httpClient *http.Client
	logger     dialfire.Logger
	baseURL    string
}

// New creates a new Dialfire API client.
func New(config *dialfire.Config) (*Client, error) {
	if config == nil {
		return nil, dialfire.ErrConfigRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	httpClient := http.NewClient(endpoint, createHTTPClientOptions(config)...)

	return &Client{
		httpClient: httpClient,
		logger:     config.Logger,
		baseURL:    endpoint,
	}, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dialfire.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// Campaign implements dialfire.Client.Campaign.
func (c *Client) Campaign(campaignID, token string) dialfire.CampaignAPI {
	return NewCampaignClient(c.httpClient, campaignID, token)
}

// Tenant implements dialfire.Client.Tenant.
func (c *Client) Tenant(tenantID, token string) dialfire.TenantAPI {
	return NewTenantClient(c.httpClient, tenantID, token)
}

// loggerAdapter adapts dialfire.Logger to http.Logger.
type loggerAdapter struct {
	logger dialfire.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
