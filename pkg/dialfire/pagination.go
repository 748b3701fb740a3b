package dialfire

import (
	"context"
	"encoding/json"
	"net/http"
)

// ResendFunc re-issues the request described by a spec and produces the next
// page. The engine installs it when it builds a PagedResponse.
type ResendFunc func(ctx context.Context, spec *RequestSpec) (*PagedResponse, error)

// PagedResponse is the normalized result of one HTTP exchange with the
// Dialfire API. StatusCode, Body, and FinalURL pass the transport response
// through verbatim; Parsed, Matches, Cursor, and Limit normalize the vendor's
// response envelope.
//
// Parsed and Matches are never nil. A body that is absent, non-JSON, or
// malformed yields an empty Parsed map and an empty Matches slice without an
// error: "no hits" and "unparsable body" are deliberately indistinguishable.
type PagedResponse struct {
	StatusCode int
	Body       []byte
	FinalURL   string

	// Parsed is the decoded JSON object of the response body.
	Parsed map[string]interface{}
	// Matches holds the records of the envelope's "hits" field.
	Matches []map[string]interface{}
	// Cursor is the server-issued pagination cursor; empty means exhausted.
	Cursor string
	// Limit is the effective result limit reported by the server, falling
	// back to the limit that was requested.
	Limit int

	spec   *RequestSpec
	resend ResendFunc
}

// NewPagedResponse builds a paged response from a raw transport result. The
// spec is the request that produced the exchange; resend, when non-nil, lets
// NextPage re-invoke the engine against the same spec.
func NewPagedResponse(statusCode int, body []byte, finalURL string, spec *RequestSpec, resend ResendFunc) *PagedResponse {
	page := &PagedResponse{
		StatusCode: statusCode,
		Body:       body,
		FinalURL:   finalURL,
		Parsed:     map[string]interface{}{},
		Matches:    []map[string]interface{}{},
		spec:       spec,
		resend:     resend,
	}

	if spec != nil {
		page.Limit = spec.Limit
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed != nil {
		page.Parsed = parsed
	}

	if hits, ok := page.Parsed["hits"].([]interface{}); ok {
		for _, hit := range hits {
			if record, ok := hit.(map[string]interface{}); ok {
				page.Matches = append(page.Matches, record)
			}
		}
	}

	page.Cursor = stringField(page.Parsed, "cursor", "__cursor__")

	if limit, ok := intField(page.Parsed, "limit", "__limit__"); ok {
		page.Limit = limit
	}

	return page
}

// HasMore reports whether the server issued a cursor for a further page.
func (p *PagedResponse) HasMore() bool {
	return p.Cursor != ""
}

// NextPage writes this page's cursor into the originating RequestSpec (an
// explicit, in-place state transition on the spec) and re-issues the request,
// returning a freshly constructed page.
//
// Calling NextPage on an exhausted page (empty cursor) re-issues the original
// first-page request, since an empty cursor is request-shape-equivalent to "no
// cursor requested". Callers terminate pagination by checking HasMore, not by
// relying on an error here.
func (p *PagedResponse) NextPage(ctx context.Context) (*PagedResponse, error) {
	if p.spec == nil || p.resend == nil {
		return nil, ErrResponseNotPageable
	}

	p.spec.Cursor = p.Cursor

	return p.resend(ctx, p.spec)
}

// Err returns an *APIError when the exchange completed with a non-success
// status, and nil otherwise. The engine itself never fails on status codes;
// layering an error on top is the caller's choice.
func (p *PagedResponse) Err() error {
	if p.StatusCode >= http.StatusOK && p.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: p.StatusCode,
		Body:       p.Body,
		URL:        p.FinalURL,
	}
}

// stringField returns the first of the named fields holding a string value.
// The vendor spells envelope fields both with and without underscores; the
// plain name wins.
func stringField(parsed map[string]interface{}, names ...string) string {
	for _, name := range names {
		if value, ok := parsed[name].(string); ok {
			return value
		}
	}

	return ""
}

// intField returns the first of the named fields holding a numeric value.
func intField(parsed map[string]interface{}, names ...string) (int, bool) {
	for _, name := range names {
		if value, ok := parsed[name].(float64); ok {
			return int(value), true
		}
	}

	return 0, false
}
