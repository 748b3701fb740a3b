package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/armitxes/dialfire-go/internal/auth"
	"github.com/armitxes/dialfire-go/internal/constants"
	"github.com/armitxes/dialfire-go/pkg/dialfire"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the request engine: it owns the full lifecycle of one outbound
// call against the Dialfire API — URL assembly, header construction,
// payload-shape dispatch, execution, and paged-response construction. One
// invocation of Do issues exactly one synchronous HTTP exchange; retries are
// off unless explicitly configured.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	userAgent  string
	debug      bool
	logger     Logger
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each HTTP exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries. Opt-in: the default client
// performs one attempt per call.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// NewClient creates a new request engine for the given API origin.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the call described by spec, authenticated through tokens, and
// returns the paged response. The response carries a resend hook back into
// this method, so its NextPage re-enters the engine with the same spec and
// token scope.
//
// A completed exchange never fails here, whatever its status code; only
// transport-level failures return an error.
func (c *Client) Do(ctx context.Context, tokens auth.TokenProvider, spec *dialfire.RequestSpec) (*dialfire.PagedResponse, error) {
	body, contentType, err := encodeBody(spec)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + spec.Path

	req, err := retryablehttp.NewRequestWithContext(ctx, spec.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if tokens != nil {
		token, err := tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+token)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("dialfire request", map[string]interface{}{
			"method": spec.Method,
			"url":    url,
			"cursor": spec.Cursor,
			"limit":  spec.Limit,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("dialfire response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
			"bytes":  len(raw),
		})
	}

	resend := func(ctx context.Context, spec *dialfire.RequestSpec) (*dialfire.PagedResponse, error) {
		return c.Do(ctx, tokens, spec)
	}

	return dialfire.NewPagedResponse(resp.StatusCode, raw, resp.Request.URL.String(), spec, resend), nil
}

// encodeBody dispatches on the spec's payload variant. Attachments take over
// the body as a multipart form; otherwise the active payload variant encodes
// itself, picking up the spec's cursor and limit where the variant supports
// them. Encoding always starts from a fresh copy, so repeated sends of one
// spec stay idempotent.
func encodeBody(spec *dialfire.RequestSpec) (interface{}, string, error) {
	if len(spec.Files) > 0 {
		return encodeMultipart(spec.Files)
	}

	if spec.Payload == nil {
		return nil, constants.ContentTypePlainText, nil
	}

	body, err := spec.Payload.Encode(spec.Cursor, spec.Limit)
	if err != nil {
		return nil, "", fmt.Errorf("encoding payload: %w", err)
	}

	return body, constants.ContentTypePlainText, nil
}

// encodeMultipart writes the attachments as form parts under the fixed upload
// field name.
func encodeMultipart(files []dialfire.FileAttachment) (interface{}, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile(constants.UploadFieldName, file.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("creating form file %q: %w", file.Filename, err)
		}

		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, "", fmt.Errorf("writing form file %q: %w", file.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
