package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armitxes/dialfire-go/internal/auth"
	dfhttp "github.com/armitxes/dialfire-go/internal/http"
	"github.com/armitxes/dialfire-go/pkg/dialfire"
)

// failingTokenProvider for testing.
type failingTokenProvider struct {
	err error
}

func (p *failingTokenProvider) Token(_ context.Context) (string, error) {
	return "", p.err
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/campaigns/42/tasks", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "text/plain", request.Header.Get("Content-Type"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"hits":   []map[string]interface{}{{"name": "qualify"}},
				"cursor": "",
			})
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)
		spec := dialfire.NewRequestSpec("GET", "campaigns/42//tasks")

		page, err := client.Do(context.Background(), auth.StaticToken("test-token"), spec)
		require.NoError(t, err)
		assert.Equal(t, 200, page.StatusCode)
		require.Len(t, page.Matches, 1)
		assert.Equal(t, "qualify", page.Matches[0]["name"])
		assert.False(t, page.HasMore())
	})

	t.Run("user agent header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "dialfire-go/test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL, dfhttp.WithUserAgent("dialfire-go/test"))

		_, err := client.Do(context.Background(), nil, dialfire.NewRequestSpec("GET", "tenants/7/users"))
		require.NoError(t, err)
	})

	t.Run("raw payload is sent verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, "plain text body", string(body))
			assert.Equal(t, "text/plain", request.Header.Get("Content-Type"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)
		spec := dialfire.NewRequestSpec("POST", "campaigns/42/contacts/1/update")
		spec.Payload = dialfire.RawPayload("plain text body")

		_, err := client.Do(context.Background(), auth.StaticToken("t"), spec)
		require.NoError(t, err)
	})

	t.Run("JSON payload keeps text content type", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var decoded map[string]interface{}

			require.NoError(t, json.NewDecoder(request.Body).Decode(&decoded))
			assert.Equal(t, "crm-4711", decoded["$ref"])
			// The vendor expects text/plain even for JSON bodies.
			assert.Equal(t, "text/plain", request.Header.Get("Content-Type"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)
		spec := dialfire.NewRequestSpec("POST", "campaigns/42/tasks/main/contacts/create")
		spec.Payload = dialfire.JSONPayload{"$ref": "crm-4711"}

		_, err := client.Do(context.Background(), auth.StaticToken("t"), spec)
		require.NoError(t, err)
	})

	t.Run("filter payload carries pagination clauses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var decoded []dialfire.FilterClause

			require.NoError(t, json.NewDecoder(request.Body).Decode(&decoded))
			require.Len(t, decoded, 3)
			assert.Equal(t, "$phone", decoded[0].Field)
			assert.Equal(t, "_cursor_", decoded[1].Field)
			assert.Equal(t, []interface{}{"abc"}, decoded[1].Values)
			assert.Equal(t, "_limit_", decoded[2].Field)
			assert.Equal(t, []interface{}{float64(50)}, decoded[2].Values)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)
		spec := dialfire.NewRequestSpec("POST", "campaigns/42/contacts/filter")
		spec.Payload = dialfire.FilterPayload{{Values: []interface{}{"491"}, Field: "$phone"}}
		spec.Cursor = "abc"
		spec.Limit = 50

		_, err := client.Do(context.Background(), auth.StaticToken("t"), spec)
		require.NoError(t, err)
	})

	t.Run("multipart upload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseMultipartForm(1<<20))

			files := request.MultipartForm.File["data"]
			require.Len(t, files, 1)
			assert.Equal(t, "greeting.wav", files[0].Filename)

			file, err := files[0].Open()
			require.NoError(t, err)
			defer func() { _ = file.Close() }()

			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "RIFF....", string(content))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)
		spec := dialfire.NewRequestSpec("PUT", "campaigns/42/resources/greeting.wav")
		spec.Files = []dialfire.FileAttachment{{Filename: "greeting.wav", Reader: strings.NewReader("RIFF....")}}

		_, err := client.Do(context.Background(), auth.StaticToken("t"), spec)
		require.NoError(t, err)
	})

	t.Run("non-success status still yields a page", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte("boom"))
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)

		page, err := client.Do(context.Background(), auth.StaticToken("t"), dialfire.NewRequestSpec("GET", "campaigns/42/tasks"))
		require.NoError(t, err)
		assert.Equal(t, 500, page.StatusCode)
		assert.Equal(t, []byte("boom"), page.Body)
		assert.Empty(t, page.Parsed)
		assert.Empty(t, page.Matches)
		require.Error(t, page.Err())
	})

	t.Run("non-JSON success body degrades silently", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte("not json at all"))
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)

		page, err := client.Do(context.Background(), auth.StaticToken("t"), dialfire.NewRequestSpec("GET", "campaigns/42/donotcall"))
		require.NoError(t, err)
		assert.Empty(t, page.Parsed)
		assert.Empty(t, page.Matches)
		assert.Equal(t, []byte("not json at all"), page.Body)
	})

	t.Run("token provider failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dfhttp.NewClient(server.URL)
		provider := &failingTokenProvider{err: errors.New("vault unavailable")}

		_, err := client.Do(context.Background(), provider, dialfire.NewRequestSpec("GET", "campaigns/42/tasks"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting token")
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		server.Close()

		client := dfhttp.NewClient(server.URL)

		_, err := client.Do(context.Background(), auth.StaticToken("t"), dialfire.NewRequestSpec("GET", "campaigns/42/tasks"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "executing request")
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := dfhttp.NewClient(server.URL, dfhttp.WithLogger(logger), dfhttp.WithDebug(true))

		_, err := client.Do(context.Background(), auth.StaticToken("t"), dialfire.NewRequestSpec("GET", "campaigns/42/tasks"))
		require.NoError(t, err)
		assert.Len(t, logger.logs, 2)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do_Pagination(t *testing.T) {
	t.Parallel()

	pages := map[string]map[string]interface{}{
		"": {
			"hits":   []map[string]interface{}{{"$id": "c1"}, {"$id": "c2"}},
			"cursor": "next1",
		},
		"next1": {
			"hits":   []map[string]interface{}{{"$id": "c3"}},
			"cursor": "next2",
		},
		"next2": {
			"hits":       []map[string]interface{}{},
			"__cursor__": "",
		},
	}

	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		var filter []dialfire.FilterClause

		require.NoError(t, json.NewDecoder(request.Body).Decode(&filter))

		cursor := ""

		for _, clause := range filter {
			switch clause.Field {
			case "_cursor_":
				cursor, _ = clause.Values[0].(string)
			case "_limit_":
				assert.Equal(t, []interface{}{float64(2)}, clause.Values)
			case "$task":
				assert.Equal(t, []interface{}{"lead_success"}, clause.Values)
			default:
				t.Errorf("unexpected filter clause %q", clause.Field)
			}
		}

		_ = json.NewEncoder(writer).Encode(pages[cursor])
	}))
	defer server.Close()

	client := dfhttp.NewClient(server.URL)
	spec := dialfire.NewRequestSpec("POST", "campaigns/42/contacts/filter")
	spec.Payload = dialfire.FilterPayload{{Values: []interface{}{"lead_success"}, Field: "$task"}}
	spec.Limit = 2

	page, err := client.Do(context.Background(), auth.StaticToken("t"), spec)
	require.NoError(t, err)

	var ids []string

	for {
		for _, hit := range page.Matches {
			id, _ := hit["$id"].(string)
			ids = append(ids, id)
		}

		if !page.HasMore() {
			break
		}

		page, err = page.NextPage(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"c1", "c2", "c3"}, ids)
	assert.Equal(t, 3, requests)
	assert.Equal(t, "next2", spec.Cursor)
}
